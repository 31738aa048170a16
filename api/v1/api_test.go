package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/models"
	"github.com/travelprojects-api/services"
	"gorm.io/gorm"
)

// stubStore is a minimal in-memory ProjectStore/PlaceStore for handler tests
type stubStore struct {
	projects map[string]*models.TravelProject
	places   map[string][]models.ProjectPlace
}

func newStubStore() *stubStore {
	return &stubStore{
		projects: make(map[string]*models.TravelProject),
		places:   make(map[string][]models.ProjectPlace),
	}
}

func (s *stubStore) seedProject(name string) *models.TravelProject {
	project := &models.TravelProject{ID: uuid.New().String(), Name: name}
	s.projects[project.ID] = project
	return project
}

func (s *stubStore) FindAllWithPlaces() ([]models.TravelProject, error) {
	projects := make([]models.TravelProject, 0, len(s.projects))
	for _, project := range s.projects {
		p := *project
		p.Places = s.places[p.ID]
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *stubStore) FindByIDWithPlaces(id string) (models.TravelProject, error) {
	project, ok := s.projects[id]
	if !ok {
		return models.TravelProject{}, gorm.ErrRecordNotFound
	}
	found := *project
	found.Places = s.places[id]
	return found, nil
}

func (s *stubStore) FindByID(id string) (models.TravelProject, error) {
	project, ok := s.projects[id]
	if !ok {
		return models.TravelProject{}, gorm.ErrRecordNotFound
	}
	return *project, nil
}

func (s *stubStore) CreateWithPlaces(project *models.TravelProject, places []models.ProjectPlace) error {
	project.ID = uuid.New().String()
	for i := range places {
		places[i].ID = uuid.New().String()
		places[i].ProjectID = project.ID
	}
	stored := *project
	s.projects[project.ID] = &stored
	s.places[project.ID] = places
	project.Places = places
	return nil
}

func (s *stubStore) Update(project *models.TravelProject) error {
	updated := *project
	s.projects[project.ID] = &updated
	return nil
}

func (s *stubStore) Delete(id string) error {
	delete(s.projects, id)
	delete(s.places, id)
	return nil
}

func (s *stubStore) HasVisitedPlaces(id string) (bool, error) {
	for _, place := range s.places[id] {
		if place.IsVisited {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) FindByProjectID(projectID string) ([]models.ProjectPlace, error) {
	return s.places[projectID], nil
}

func (s *stubStore) CountByProjectID(projectID string) (int64, error) {
	return int64(len(s.places[projectID])), nil
}

func (s *stubStore) ExistsByExternalID(projectID string, externalID int) (bool, error) {
	for _, place := range s.places[projectID] {
		if place.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) Create(place models.ProjectPlace) (models.ProjectPlace, error) {
	place.ID = uuid.New().String()
	s.places[place.ProjectID] = append(s.places[place.ProjectID], place)
	return place, nil
}

// stubPlaceStore disambiguates the FindByID signatures between the two store
// interfaces
type stubPlaceStore struct {
	*stubStore
}

func (s stubPlaceStore) FindByID(projectID, placeID string) (models.ProjectPlace, error) {
	for _, place := range s.places[projectID] {
		if place.ID == placeID {
			return place, nil
		}
	}
	return models.ProjectPlace{}, gorm.ErrRecordNotFound
}

func (s stubPlaceStore) Update(place *models.ProjectPlace) error {
	for i, existing := range s.places[place.ProjectID] {
		if existing.ID == place.ID {
			s.places[place.ProjectID][i] = *place
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// stubCatalog serves canned artwork records
type stubCatalog struct {
	records     map[int]map[string]any
	unavailable bool
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{records: make(map[int]map[string]any)}
}

func (c *stubCatalog) GetArtwork(ctx context.Context, artworkID int) (map[string]any, error) {
	if c.unavailable {
		return nil, artic.ErrUnavailable
	}
	record, ok := c.records[artworkID]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (c *stubCatalog) ArtworkExists(ctx context.Context, artworkID int) bool {
	if c.unavailable {
		return false
	}
	_, ok := c.records[artworkID]
	return ok
}

func (c *stubCatalog) SearchArtworks(ctx context.Context, query string, limit int) (map[string]any, error) {
	if c.unavailable {
		return nil, artic.ErrUnavailable
	}
	return map[string]any{"data": []any{}}, nil
}

func newTestRouter(store *stubStore, catalog *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	projectService := services.NewProjectService(store, catalog)
	placeService := services.NewPlaceService(store, stubPlaceStore{store}, catalog)
	artworkService := services.NewArtworkService(catalog)

	RegisterRoutes(router.Group("/api/v1"), projectService, placeService, artworkService)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestDeleteProject_ConflictResponseShape(t *testing.T) {
	store := newStubStore()
	project := store.seedProject("Protected")
	store.places[project.ID] = []models.ProjectPlace{
		{ID: uuid.New().String(), ProjectID: project.ID, ExternalID: 1, Title: "Seen", IsVisited: true},
	}
	router := newTestRouter(store, newStubCatalog())

	recorder := performRequest(router, http.MethodDelete, "/api/v1/projects/"+project.ID, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Cannot delete project with visited places", body["error"])
	assert.Equal(t, "A project cannot be deleted if any of its places are marked as visited", body["detail"])
}

func TestDeleteProject_NoContent(t *testing.T) {
	store := newStubStore()
	project := store.seedProject("Disposable")
	router := newTestRouter(store, newStubCatalog())

	recorder := performRequest(router, http.MethodDelete, "/api/v1/projects/"+project.ID, "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, store.projects)
}

func TestGetProject_NotFound(t *testing.T) {
	router := newTestRouter(newStubStore(), newStubCatalog())

	recorder := performRequest(router, http.MethodGet, "/api/v1/projects/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateProject_MissingName(t *testing.T) {
	router := newTestRouter(newStubStore(), newStubCatalog())

	recorder := performRequest(router, http.MethodPost, "/api/v1/projects", `{"description": "anonymous"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateProject_ValidationErrorsInBody(t *testing.T) {
	router := newTestRouter(newStubStore(), newStubCatalog())

	recorder := performRequest(router, http.MethodPost, "/api/v1/projects",
		`{"name": "Bad ids", "places": [{"external_id": 7}]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["places"], "Artwork with ID 7 does not exist in Art Institute API")
}

func TestCreateProject_Created(t *testing.T) {
	store := newStubStore()
	catalog := newStubCatalog()
	catalog.records[27992] = map[string]any{
		"id":    float64(27992),
		"title": "A Sunday on La Grande Jatte",
	}
	router := newTestRouter(store, catalog)

	recorder := performRequest(router, http.MethodPost, "/api/v1/projects",
		`{"name": "Chicago", "places": [{"external_id": 27992}]}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Name   string `json:"name"`
		Places []struct {
			Title string `json:"title"`
		} `json:"places"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Chicago", body.Name)
	require.Len(t, body.Places, 1)
	assert.Equal(t, "A Sunday on La Grande Jatte", body.Places[0].Title)
}

func TestUpdateProject_BlankNameRejected(t *testing.T) {
	store := newStubStore()
	project := store.seedProject("Keep me")
	router := newTestRouter(store, newStubCatalog())

	recorder := performRequest(router, http.MethodPut,
		"/api/v1/projects/"+project.ID, `{"name": ""}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body.Errors["name"], "This field may not be blank")
	assert.Equal(t, "Keep me", store.projects[project.ID].Name)
}

func TestAddPlace_Created(t *testing.T) {
	store := newStubStore()
	project := store.seedProject("Chicago")
	catalog := newStubCatalog()
	catalog.records[28560] = map[string]any{"id": float64(28560), "title": "The Bedroom"}
	router := newTestRouter(store, catalog)

	recorder := performRequest(router, http.MethodPost,
		"/api/v1/projects/"+project.ID+"/places/add", `{"external_id": 28560}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "The Bedroom", body.Title)
}

func TestUpdatePlace_VisitedFlag(t *testing.T) {
	store := newStubStore()
	project := store.seedProject("Chicago")
	placeID := uuid.New().String()
	store.places[project.ID] = []models.ProjectPlace{
		{ID: placeID, ProjectID: project.ID, ExternalID: 1, Title: "The Bedroom"},
	}
	router := newTestRouter(store, newStubCatalog())

	recorder := performRequest(router, http.MethodPatch,
		"/api/v1/projects/"+project.ID+"/places/"+placeID+"/update", `{"is_visited": true}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Title     string `json:"title"`
		IsVisited bool   `json:"is_visited"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.IsVisited)
	assert.Equal(t, "The Bedroom", body.Title)
}

func TestSearchArtworks_Unavailable(t *testing.T) {
	catalog := newStubCatalog()
	catalog.unavailable = true
	router := newTestRouter(newStubStore(), catalog)

	recorder := performRequest(router, http.MethodGet, "/api/v1/artworks/search?q=monet", "")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestSearchArtworks_OK(t *testing.T) {
	router := newTestRouter(newStubStore(), newStubCatalog())

	recorder := performRequest(router, http.MethodGet, "/api/v1/artworks/search?q=monet&limit=5", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}
