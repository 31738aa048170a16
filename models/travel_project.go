package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxPlacesPerProject is the hard cap on places a single project can hold.
const MaxPlacesPerProject = 10

// TravelProject represents a curated trip plan built from museum artworks
type TravelProject struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string     `json:"name" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"type:text;default:null"`
	StartDate   *time.Time `json:"start_date" gorm:"type:date;default:null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Places []ProjectPlace `json:"places,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for TravelProject model
func (TravelProject) TableName() string {
	return "travel_projects"
}

// BeforeCreate assigns a uuid so fakes and tests get real IDs too
func (p *TravelProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// IsCompleted reports whether every place of the project has been visited.
// A project with no places is never completed. Requires Places to be loaded.
func (p *TravelProject) IsCompleted() bool {
	if len(p.Places) == 0 {
		return false
	}
	for _, place := range p.Places {
		if !place.IsVisited {
			return false
		}
	}
	return true
}

// CanBeDeleted reports whether the project may be removed. A project with at
// least one visited place is protected. Requires Places to be loaded.
func (p *TravelProject) CanBeDeleted() bool {
	for _, place := range p.Places {
		if place.IsVisited {
			return false
		}
	}
	return true
}
