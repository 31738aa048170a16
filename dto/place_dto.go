package dto

import (
	"time"

	"github.com/travelprojects-api/models"
)

// CreatePlaceRequest represents the payload for adding an artwork to a
// project, either inline at project creation or via the add-place endpoint
type CreatePlaceRequest struct {
	ExternalID int    `json:"external_id" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

// UpdatePlaceRequest represents a partial place update. Only notes and
// is_visited are mutable; pointers distinguish absent fields from zero values.
type UpdatePlaceRequest struct {
	Notes     *string `json:"notes"`
	IsVisited *bool   `json:"is_visited"`
}

// PlaceResponse represents the standard response format for a place
type PlaceResponse struct {
	ID            string    `json:"id"`
	ExternalID    int       `json:"external_id"`
	Title         string    `json:"title"`
	ArtistDisplay string    `json:"artist_display"`
	DateDisplay   string    `json:"date_display"`
	PlaceOfOrigin string    `json:"place_of_origin"`
	ArtworkType   string    `json:"artwork_type"`
	ImageID       string    `json:"image_id"`
	Notes         string    `json:"notes"`
	IsVisited     bool      `json:"is_visited"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPlaceResponse maps a place model to its response format
func NewPlaceResponse(place models.ProjectPlace) PlaceResponse {
	return PlaceResponse{
		ID:            place.ID,
		ExternalID:    place.ExternalID,
		Title:         place.Title,
		ArtistDisplay: place.ArtistDisplay,
		DateDisplay:   place.DateDisplay,
		PlaceOfOrigin: place.PlaceOfOrigin,
		ArtworkType:   place.ArtworkType,
		ImageID:       place.ImageID,
		Notes:         place.Notes,
		IsVisited:     place.IsVisited,
		CreatedAt:     place.CreatedAt,
		UpdatedAt:     place.UpdatedAt,
	}
}
