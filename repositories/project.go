package repositories

import (
	"github.com/travelprojects-api/database"
	"github.com/travelprojects-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for travel projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// placesInCreationOrder orders preloaded places oldest-first
func placesInCreationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindAllWithPlaces retrieves all projects newest-first, places loaded in
// creation order
func (r *ProjectRepository) FindAllWithPlaces() ([]models.TravelProject, error) {
	var projects []models.TravelProject
	result := database.DB.
		Preload("Places", placesInCreationOrder).
		Order("created_at DESC").
		Find(&projects)
	return projects, result.Error
}

// FindByIDWithPlaces retrieves a project by its ID with places loaded in
// creation order
func (r *ProjectRepository) FindByIDWithPlaces(id string) (models.TravelProject, error) {
	var project models.TravelProject
	result := database.DB.
		Preload("Places", placesInCreationOrder).
		First(&project, "id = ?", id)
	return project, result.Error
}

// FindByID retrieves a project by its ID without relations
func (r *ProjectRepository) FindByID(id string) (models.TravelProject, error) {
	var project models.TravelProject
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// CreateWithPlaces inserts a project and its initial places in one
// transaction: either all rows are committed or none are
func (r *ProjectRepository) CreateWithPlaces(project *models.TravelProject, places []models.ProjectPlace) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		for i := range places {
			places[i].ProjectID = project.ID
			if err := tx.Create(&places[i]).Error; err != nil {
				return err
			}
		}

		project.Places = places
		return nil
	})
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(project *models.TravelProject) error {
	result := database.DB.Save(project)
	return result.Error
}

// Delete removes a project and all its places in one transaction
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectPlace{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.TravelProject{}, "id = ?", id)
		return result.Error
	})
}

// HasVisitedPlaces reports whether any place of the project is marked visited
func (r *ProjectRepository) HasVisitedPlaces(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ProjectPlace{}).
		Where("project_id = ? AND is_visited = ?", id, true).
		Count(&count).Error
	return count > 0, err
}
