package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectPlace represents a single artwork attached to a travel project.
// Catalog-derived fields are filled from the Art Institute of Chicago API at
// creation time and are immutable afterwards; only Notes and IsVisited are
// user-editable.
type ProjectPlace struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_project_external_id"`

	// ID from Art Institute of Chicago API, unique within a project
	ExternalID int `json:"external_id" gorm:"not null;uniqueIndex:idx_project_external_id"`

	Title         string `json:"title" gorm:"size:500;not null"`
	ArtistDisplay string `json:"artist_display" gorm:"size:500;default:null"`
	DateDisplay   string `json:"date_display" gorm:"size:255;default:null"`
	PlaceOfOrigin string `json:"place_of_origin" gorm:"size:255;default:null"`
	ArtworkType   string `json:"artwork_type" gorm:"size:255;default:null"`
	ImageID       string `json:"image_id" gorm:"size:255;default:null"`

	Notes     string `json:"notes" gorm:"type:text;default:null"`
	IsVisited bool   `json:"is_visited" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project TravelProject `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for ProjectPlace model
func (ProjectPlace) TableName() string {
	return "project_places"
}

// BeforeCreate assigns a uuid primary key when none is set
func (p *ProjectPlace) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
