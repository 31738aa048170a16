package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/travelprojects-api/dto"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/models"
	"gorm.io/gorm"
)

// PlaceService handles business logic for places within a project
type PlaceService struct {
	projectRepo ProjectStore
	placeRepo   PlaceStore
	catalog     ArtworkCatalog
}

// NewPlaceService creates a new place service instance
func NewPlaceService(projectRepo ProjectStore, placeRepo PlaceStore, catalog ArtworkCatalog) *PlaceService {
	return &PlaceService{
		projectRepo: projectRepo,
		placeRepo:   placeRepo,
		catalog:     catalog,
	}
}

// ListPlaces returns all places of a project in creation order
func (s *PlaceService) ListPlaces(projectID string) ([]dto.PlaceResponse, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return nil, err
	}

	places, err := s.placeRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, dto.NewPlaceResponse(place))
	}

	return responses, nil
}

// GetPlace returns a single place, failing with not-found when the place does
// not belong to the given project
func (s *PlaceService) GetPlace(projectID, placeID string) (dto.PlaceResponse, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return dto.PlaceResponse{}, err
	}

	place, err := s.placeRepo.FindByID(projectID, placeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlaceResponse{}, ErrPlaceNotFound
		}
		return dto.PlaceResponse{}, err
	}

	return dto.NewPlaceResponse(place), nil
}

// AddPlace attaches an artwork to an existing project. The external id must
// resolve in the catalog, the project must hold fewer than the maximum number
// of places and must not already contain the artwork. The checks run against
// the current persisted state without a serializing lock, so two concurrent
// calls can both pass them; the unique index on (project_id, external_id)
// backstops the duplicate rule, the cap stays best-effort.
func (s *PlaceService) AddPlace(ctx context.Context, projectID string, req dto.CreatePlaceRequest) (dto.PlaceResponse, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return dto.PlaceResponse{}, err
	}

	if !s.catalog.ArtworkExists(ctx, req.ExternalID) {
		validationErr := NewValidationError()
		validationErr.Add("external_id", fmt.Sprintf(
			"Artwork with ID %d does not exist in Art Institute API", req.ExternalID))
		return dto.PlaceResponse{}, validationErr
	}

	count, err := s.placeRepo.CountByProjectID(projectID)
	if err != nil {
		return dto.PlaceResponse{}, err
	}
	if count >= models.MaxPlacesPerProject {
		validationErr := NewValidationError()
		validationErr.Add("places", "A project cannot have more than 10 places")
		return dto.PlaceResponse{}, validationErr
	}

	exists, err := s.placeRepo.ExistsByExternalID(projectID, req.ExternalID)
	if err != nil {
		return dto.PlaceResponse{}, err
	}
	if exists {
		validationErr := NewValidationError()
		validationErr.Add("external_id", "This place is already in the project")
		return dto.PlaceResponse{}, validationErr
	}

	place := s.resolvePlace(ctx, req)
	place.ProjectID = projectID

	created, err := s.placeRepo.Create(place)
	if err != nil {
		return dto.PlaceResponse{}, err
	}

	return dto.NewPlaceResponse(created), nil
}

// UpdatePlace applies a partial update restricted to notes and is_visited;
// catalog-derived fields are immutable after creation
func (s *PlaceService) UpdatePlace(projectID, placeID string, req dto.UpdatePlaceRequest) (dto.PlaceResponse, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return dto.PlaceResponse{}, err
	}

	place, err := s.placeRepo.FindByID(projectID, placeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlaceResponse{}, ErrPlaceNotFound
		}
		return dto.PlaceResponse{}, err
	}

	if req.Notes != nil {
		place.Notes = *req.Notes
	}
	if req.IsVisited != nil {
		place.IsVisited = *req.IsVisited
	}

	if err := s.placeRepo.Update(&place); err != nil {
		return dto.PlaceResponse{}, err
	}

	return dto.NewPlaceResponse(place), nil
}

// resolvePlace fetches the artwork record for a validated request. Any
// failure at this point, confirmed missing record included, degrades to the
// synthesized-title stub since existence was already checked.
func (s *PlaceService) resolvePlace(ctx context.Context, req dto.CreatePlaceRequest) models.ProjectPlace {
	record, err := s.catalog.GetArtwork(ctx, req.ExternalID)
	if err != nil || record == nil {
		if err != nil {
			log.Printf("Warning: catalog unavailable for artwork %d, creating fallback place: %v",
				req.ExternalID, err)
		}
		return fallbackPlace(req.ExternalID, req.Notes)
	}

	return placeFromAttributes(artic.ExtractPlaceAttributes(record), req.Notes)
}

func (s *PlaceService) ensureProjectExists(projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}
