package services

import (
	"context"

	"github.com/travelprojects-api/models"
)

// ProjectStore is the persistence capability for travel projects. The gorm
// repository satisfies it in production; tests use in-memory fakes.
type ProjectStore interface {
	FindAllWithPlaces() ([]models.TravelProject, error)
	FindByIDWithPlaces(id string) (models.TravelProject, error)
	FindByID(id string) (models.TravelProject, error)
	CreateWithPlaces(project *models.TravelProject, places []models.ProjectPlace) error
	Update(project *models.TravelProject) error
	Delete(id string) error
	HasVisitedPlaces(id string) (bool, error)
}

// PlaceStore is the persistence capability for project places
type PlaceStore interface {
	FindByProjectID(projectID string) ([]models.ProjectPlace, error)
	FindByID(projectID, placeID string) (models.ProjectPlace, error)
	CountByProjectID(projectID string) (int64, error)
	ExistsByExternalID(projectID string, externalID int) (bool, error)
	Create(place models.ProjectPlace) (models.ProjectPlace, error)
	Update(place *models.ProjectPlace) error
}

// ArtworkCatalog is the external catalog capability. GetArtwork returns a nil
// record for a confirmed not-found and an error when the catalog is
// unreachable, so fallback logic stays explicit.
type ArtworkCatalog interface {
	GetArtwork(ctx context.Context, artworkID int) (map[string]any, error)
	ArtworkExists(ctx context.Context, artworkID int) bool
	SearchArtworks(ctx context.Context, query string, limit int) (map[string]any, error)
}
