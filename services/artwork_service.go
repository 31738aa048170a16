package services

import (
	"context"
)

// ArtworkService exposes the catalog search passthrough
type ArtworkService struct {
	catalog ArtworkCatalog
}

// NewArtworkService creates a new artwork service instance
func NewArtworkService(catalog ArtworkCatalog) *ArtworkService {
	return &ArtworkService{catalog: catalog}
}

// Search runs a free-text search against the external catalog. Results come
// back as-is; this system does not page or filter them further.
func (s *ArtworkService) Search(ctx context.Context, query string, limit int) (map[string]any, error) {
	if query == "" {
		validationErr := NewValidationError()
		validationErr.Add("q", "This field is required")
		return nil, validationErr
	}

	return s.catalog.SearchArtworks(ctx, query, limit)
}
