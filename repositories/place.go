package repositories

import (
	"github.com/travelprojects-api/database"
	"github.com/travelprojects-api/models"
)

// PlaceRepository handles database operations for project places
type PlaceRepository struct{}

// NewPlaceRepository creates a new place repository instance
func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{}
}

// FindByProjectID retrieves all places of a project in creation order
func (r *PlaceRepository) FindByProjectID(projectID string) ([]models.ProjectPlace, error) {
	var places []models.ProjectPlace
	result := database.DB.
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&places)
	return places, result.Error
}

// FindByID retrieves a place by its ID scoped to a project
func (r *PlaceRepository) FindByID(projectID, placeID string) (models.ProjectPlace, error) {
	var place models.ProjectPlace
	result := database.DB.First(&place, "id = ? AND project_id = ?", placeID, projectID)
	return place, result.Error
}

// CountByProjectID counts the places currently held by a project
func (r *PlaceRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.ProjectPlace{}).
		Where("project_id = ?", projectID).
		Count(&count)
	return count, result.Error
}

// ExistsByExternalID checks whether the project already holds an artwork with
// the given external id
func (r *PlaceRepository) ExistsByExternalID(projectID string, externalID int) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ProjectPlace{}).
		Where("project_id = ? AND external_id = ?", projectID, externalID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new place into the database
func (r *PlaceRepository) Create(place models.ProjectPlace) (models.ProjectPlace, error) {
	result := database.DB.Create(&place)
	return place, result.Error
}

// Update persists changes to an existing place
func (r *PlaceRepository) Update(place *models.ProjectPlace) error {
	result := database.DB.Save(place)
	return result.Error
}
