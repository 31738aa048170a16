package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/models"
	"gorm.io/gorm"
)

// fakeStore is an in-memory implementation of ProjectStore and PlaceStore
type fakeStore struct {
	projects []*models.TravelProject
	places   map[string][]models.ProjectPlace
}

func newFakeStore() *fakeStore {
	return &fakeStore{places: make(map[string][]models.ProjectPlace)}
}

func (f *fakeStore) seedProject(name string) *models.TravelProject {
	project := &models.TravelProject{ID: uuid.New().String(), Name: name}
	f.projects = append(f.projects, project)
	return project
}

func (f *fakeStore) seedPlace(projectID string, place models.ProjectPlace) models.ProjectPlace {
	place.ID = uuid.New().String()
	place.ProjectID = projectID
	f.places[projectID] = append(f.places[projectID], place)
	return place
}

func (f *fakeStore) FindAllWithPlaces() ([]models.TravelProject, error) {
	// Insertion order is creation order; newest-first means reversed
	projects := make([]models.TravelProject, 0, len(f.projects))
	for i := len(f.projects) - 1; i >= 0; i-- {
		project := *f.projects[i]
		project.Places = f.places[project.ID]
		projects = append(projects, project)
	}
	return projects, nil
}

func (f *fakeStore) FindByIDWithPlaces(id string) (models.TravelProject, error) {
	for _, project := range f.projects {
		if project.ID == id {
			found := *project
			found.Places = f.places[id]
			return found, nil
		}
	}
	return models.TravelProject{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindByID(id string) (models.TravelProject, error) {
	for _, project := range f.projects {
		if project.ID == id {
			return *project, nil
		}
	}
	return models.TravelProject{}, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateWithPlaces(project *models.TravelProject, places []models.ProjectPlace) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	for i := range places {
		places[i].ID = uuid.New().String()
		places[i].ProjectID = project.ID
	}
	stored := *project
	f.projects = append(f.projects, &stored)
	f.places[project.ID] = places
	project.Places = places
	return nil
}

func (f *fakeStore) Update(project *models.TravelProject) error {
	for i, existing := range f.projects {
		if existing.ID == project.ID {
			updated := *project
			f.projects[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) Delete(id string) error {
	for i, project := range f.projects {
		if project.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			delete(f.places, id)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) HasVisitedPlaces(id string) (bool, error) {
	for _, place := range f.places[id] {
		if place.IsVisited {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) FindByProjectID(projectID string) ([]models.ProjectPlace, error) {
	return f.places[projectID], nil
}

func (f *fakeStore) FindPlaceByID(projectID, placeID string) (models.ProjectPlace, error) {
	for _, place := range f.places[projectID] {
		if place.ID == placeID {
			return place, nil
		}
	}
	return models.ProjectPlace{}, gorm.ErrRecordNotFound
}

// FindByID on PlaceStore clashes with the ProjectStore method name, so the
// fake places store is a thin wrapper selecting the place variant.
type fakePlaceStore struct {
	*fakeStore
}

func (f fakePlaceStore) FindByID(projectID, placeID string) (models.ProjectPlace, error) {
	return f.FindPlaceByID(projectID, placeID)
}

func (f fakePlaceStore) CountByProjectID(projectID string) (int64, error) {
	return int64(len(f.places[projectID])), nil
}

func (f fakePlaceStore) ExistsByExternalID(projectID string, externalID int) (bool, error) {
	for _, place := range f.places[projectID] {
		if place.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakePlaceStore) Create(place models.ProjectPlace) (models.ProjectPlace, error) {
	place.ID = uuid.New().String()
	f.places[place.ProjectID] = append(f.places[place.ProjectID], place)
	return place, nil
}

func (f fakePlaceStore) Update(place *models.ProjectPlace) error {
	for i, existing := range f.places[place.ProjectID] {
		if existing.ID == place.ID {
			f.places[place.ProjectID][i] = *place
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeCatalog is an in-memory ArtworkCatalog. With unavailable set, every
// call fails; with fetchUnavailable set, existence checks still succeed but
// record fetches fail, simulating the catalog going down between validation
// and persistence.
type fakeCatalog struct {
	records          map[int]map[string]any
	unavailable      bool
	fetchUnavailable bool
	searchResult     map[string]any
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{records: make(map[int]map[string]any)}
}

func (f *fakeCatalog) addArtwork(id int, title, artist string) {
	f.records[id] = map[string]any{
		"id":                 float64(id),
		"title":              title,
		"artist_display":     artist,
		"date_display":       "1884-86",
		"place_of_origin":    "Paris",
		"artwork_type_title": "Painting",
		"image_id":           "img-" + title,
	}
}

func (f *fakeCatalog) GetArtwork(ctx context.Context, artworkID int) (map[string]any, error) {
	if f.unavailable || f.fetchUnavailable {
		return nil, artic.ErrUnavailable
	}
	record, ok := f.records[artworkID]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (f *fakeCatalog) ArtworkExists(ctx context.Context, artworkID int) bool {
	if f.unavailable {
		return false
	}
	_, ok := f.records[artworkID]
	return ok
}

func (f *fakeCatalog) SearchArtworks(ctx context.Context, query string, limit int) (map[string]any, error) {
	if f.unavailable {
		return nil, artic.ErrUnavailable
	}
	return f.searchResult, nil
}
