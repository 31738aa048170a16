package dto

import (
	"time"

	"github.com/travelprojects-api/models"
)

// CreateProjectRequest represents the request payload for creating a project.
// Places is a pointer so an absent list can be told apart from an empty one.
type CreateProjectRequest struct {
	Name        string                `json:"name" binding:"required,max=200"`
	Description string                `json:"description"`
	StartDate   string                `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Places      *[]CreatePlaceRequest `json:"places" binding:"omitempty,dive"`
}

// UpdateProjectRequest represents the request payload for updating a project.
// Only name, description and start_date are mutable.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

// ProjectListItem is one entry of the project list response
type ProjectListItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	PlacesCount int        `json:"places_count"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProjectDetailResponse is a single project with its full ordered place list
type ProjectDetailResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"start_date"`
	Places      []PlaceResponse `json:"places"`
	IsCompleted bool            `json:"is_completed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProjectListItem maps a model (with places loaded) to a list entry
func NewProjectListItem(project models.TravelProject) ProjectListItem {
	return ProjectListItem{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		PlacesCount: len(project.Places),
		IsCompleted: project.IsCompleted(),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// NewProjectDetailResponse maps a model (with places loaded) to a detail response
func NewProjectDetailResponse(project models.TravelProject) ProjectDetailResponse {
	places := make([]PlaceResponse, 0, len(project.Places))
	for _, place := range project.Places {
		places = append(places, NewPlaceResponse(place))
	}

	return ProjectDetailResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		Places:      places,
		IsCompleted: project.IsCompleted(),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
