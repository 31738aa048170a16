package artic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/travelprojects-api/lib/cache"
)

const (
	// DefaultBaseURL is the public Art Institute of Chicago API
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	// searchFields is the field list requested from the search endpoint
	searchFields = "id,title,artist_display,date_display,place_of_origin,artwork_type_title,image_id"

	cacheTTL       = time.Hour
	requestTimeout = 10 * time.Second
)

// ErrUnavailable indicates the catalog API could not be reached or answered
// with an unexpected status. A confirmed not-found is not an error.
var ErrUnavailable = errors.New("art institute api unavailable")

// PlaceAttributes is the internal shape extracted from a raw artwork record
type PlaceAttributes struct {
	ExternalID    int
	Title         string
	ArtistDisplay string
	DateDisplay   string
	PlaceOfOrigin string
	ArtworkType   string
	ImageID       string
}

// Client fetches artwork records from the Art Institute of Chicago API,
// caching lookups by id for one hour.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
}

// NewClient creates a catalog client. An empty baseURL falls back to the
// public API.
func NewClient(baseURL string, store cache.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      store,
	}
}

// GetArtwork returns the raw artwork record for id, or nil when the catalog
// confirms the artwork does not exist. Transport and server failures are
// reported as ErrUnavailable.
func (c *Client) GetArtwork(ctx context.Context, artworkID int) (map[string]any, error) {
	cacheKey := fmt.Sprintf("artwork_%d", artworkID)

	if cached, ok, err := c.cache.Get(ctx, cacheKey); err == nil && ok {
		var record map[string]any
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			return record, nil
		}
		// Unreadable cache entry, fall through to a fresh lookup
	} else if err != nil {
		log.Printf("Warning: artwork cache read failed for %s: %v", cacheKey, err)
	}

	endpoint := fmt.Sprintf("%s/artworks/%d", c.baseURL, artworkID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var payload struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if payload.Data == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(payload.Data); err == nil {
		if err := c.cache.Set(ctx, cacheKey, string(raw), cacheTTL); err != nil {
			log.Printf("Warning: artwork cache write failed for %s: %v", cacheKey, err)
		}
	}

	return payload.Data, nil
}

// ArtworkExists reports whether the catalog holds an artwork with the given
// id. An unreachable catalog counts as "cannot confirm", i.e. false.
func (c *Client) ArtworkExists(ctx context.Context, artworkID int) bool {
	record, err := c.GetArtwork(ctx, artworkID)
	if err != nil {
		return false
	}
	return record != nil
}

// SearchArtworks runs a free-text search against the catalog. Results are not
// cached.
func (c *Client) SearchArtworks(ctx context.Context, query string, limit int) (map[string]any, error) {
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("fields", searchFields)

	endpoint := fmt.Sprintf("%s/artworks/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return result, nil
}

// ExtractPlaceAttributes maps a raw artwork record into the internal place
// attribute shape. A missing title becomes "Unknown"; other missing fields
// stay empty.
func ExtractPlaceAttributes(record map[string]any) PlaceAttributes {
	attrs := PlaceAttributes{
		Title:         "Unknown",
		ArtistDisplay: stringField(record, "artist_display"),
		DateDisplay:   stringField(record, "date_display"),
		PlaceOfOrigin: stringField(record, "place_of_origin"),
		ArtworkType:   stringField(record, "artwork_type_title"),
		ImageID:       stringField(record, "image_id"),
	}

	if title := stringField(record, "title"); title != "" {
		attrs.Title = title
	}

	// JSON numbers decode as float64
	if id, ok := record["id"].(float64); ok {
		attrs.ExternalID = int(id)
	}

	return attrs
}

func stringField(record map[string]any, key string) string {
	if value, ok := record[key].(string); ok {
		return value
	}
	return ""
}
