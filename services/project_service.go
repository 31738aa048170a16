package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/travelprojects-api/dto"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/models"
	"gorm.io/gorm"
)

// ProjectService handles business logic for travel projects
type ProjectService struct {
	projectRepo ProjectStore
	catalog     ArtworkCatalog
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectStore, catalog ArtworkCatalog) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		catalog:     catalog,
	}
}

// ListProjects retrieves all projects newest-first, each annotated with its
// place count and completion flag
func (s *ProjectService) ListProjects() ([]dto.ProjectListItem, error) {
	projects, err := s.projectRepo.FindAllWithPlaces()
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProjectListItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, dto.NewProjectListItem(project))
	}

	return items, nil
}

// GetProjectDetail retrieves a project with its full ordered place list
func (s *ProjectService) GetProjectDetail(projectID string) (dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindByIDWithPlaces(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectDetailResponse{}, ErrProjectNotFound
		}
		return dto.ProjectDetailResponse{}, err
	}

	return dto.NewProjectDetailResponse(project), nil
}

// CreateProject validates the request, resolves inline places against the
// artwork catalog and persists everything atomically. Validation, including
// the existence check for every inline external id, happens before any row is
// written.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (dto.ProjectDetailResponse, error) {
	validationErr := NewValidationError()

	var placeRequests []dto.CreatePlaceRequest
	if req.Places != nil {
		placeRequests = *req.Places
		s.validateInlinePlaces(ctx, placeRequests, validationErr)
	}

	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		validationErr.Add("start_date", "Date has wrong format. Use YYYY-MM-DD")
	}

	if validationErr.HasErrors() {
		return dto.ProjectDetailResponse{}, validationErr
	}

	places := s.buildPlaces(ctx, placeRequests)

	project := models.TravelProject{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
	}

	if err := s.projectRepo.CreateWithPlaces(&project, places); err != nil {
		return dto.ProjectDetailResponse{}, err
	}

	return dto.NewProjectDetailResponse(project), nil
}

// UpdateProject applies a partial update; only name, description and
// start_date are mutable, the place list is untouched
func (s *ProjectService) UpdateProject(projectID string, req dto.UpdateProjectRequest) (dto.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectDetailResponse{}, ErrProjectNotFound
		}
		return dto.ProjectDetailResponse{}, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			validationErr := NewValidationError()
			validationErr.Add("name", "This field may not be blank")
			return dto.ProjectDetailResponse{}, validationErr
		}
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			validationErr := NewValidationError()
			validationErr.Add("start_date", "Date has wrong format. Use YYYY-MM-DD")
			return dto.ProjectDetailResponse{}, validationErr
		}
		project.StartDate = startDate
	}

	if err := s.projectRepo.Update(&project); err != nil {
		return dto.ProjectDetailResponse{}, err
	}

	return s.GetProjectDetail(projectID)
}

// DeleteProject removes a project and cascades to its places, unless any
// place is marked visited
func (s *ProjectService) DeleteProject(projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	hasVisited, err := s.projectRepo.HasVisitedPlaces(projectID)
	if err != nil {
		return err
	}
	if hasVisited {
		return ErrProjectHasVisitedPlaces
	}

	return s.projectRepo.Delete(projectID)
}

// validateInlinePlaces enforces the inline place rules: at most 10, at least
// one when the field is present, no duplicate external ids, and every
// external id must resolve in the catalog
func (s *ProjectService) validateInlinePlaces(ctx context.Context, placeRequests []dto.CreatePlaceRequest, validationErr *ValidationError) {
	if len(placeRequests) > models.MaxPlacesPerProject {
		validationErr.Add("places", "A project cannot have more than 10 places")
		return
	}
	if len(placeRequests) < 1 {
		validationErr.Add("places", "A project must have at least 1 place")
		return
	}

	seen := make(map[int]bool, len(placeRequests))
	for _, placeReq := range placeRequests {
		if seen[placeReq.ExternalID] {
			validationErr.Add("places", "Cannot add the same place multiple times to a project")
			return
		}
		seen[placeReq.ExternalID] = true
	}

	for _, placeReq := range placeRequests {
		if !s.catalog.ArtworkExists(ctx, placeReq.ExternalID) {
			validationErr.Add("places", fmt.Sprintf(
				"Artwork with ID %d does not exist in Art Institute API", placeReq.ExternalID))
		}
	}
}

// buildPlaces resolves each validated place request against the catalog. An
// unreachable catalog degrades to a stub row carrying only the external id
// and a synthesized title; a confirmed not-found after validation is skipped.
func (s *ProjectService) buildPlaces(ctx context.Context, placeRequests []dto.CreatePlaceRequest) []models.ProjectPlace {
	places := make([]models.ProjectPlace, 0, len(placeRequests))

	for _, placeReq := range placeRequests {
		record, err := s.catalog.GetArtwork(ctx, placeReq.ExternalID)
		if err != nil {
			log.Printf("Warning: catalog unavailable for artwork %d, creating fallback place: %v",
				placeReq.ExternalID, err)
			places = append(places, fallbackPlace(placeReq.ExternalID, placeReq.Notes))
			continue
		}
		if record == nil {
			continue
		}

		places = append(places, placeFromAttributes(artic.ExtractPlaceAttributes(record), placeReq.Notes))
	}

	return places
}

func fallbackPlace(externalID int, notes string) models.ProjectPlace {
	return models.ProjectPlace{
		ExternalID: externalID,
		Title:      fmt.Sprintf("Artwork %d", externalID),
		Notes:      notes,
	}
}

func placeFromAttributes(attrs artic.PlaceAttributes, notes string) models.ProjectPlace {
	return models.ProjectPlace{
		ExternalID:    attrs.ExternalID,
		Title:         attrs.Title,
		ArtistDisplay: attrs.ArtistDisplay,
		DateDisplay:   attrs.DateDisplay,
		PlaceOfOrigin: attrs.PlaceOfOrigin,
		ArtworkType:   attrs.ArtworkType,
		ImageID:       attrs.ImageID,
		Notes:         notes,
	}
}

func parseStartDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
