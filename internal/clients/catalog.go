package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/maelc/cinebooking/internal/domain"
)

type MovieLookupStatus int

const (
	LookupFound MovieLookupStatus = iota
	LookupNotFound
	LookupUnreachable
)

// MovieResult is the typed outcome of a catalog lookup. On the booking
// wire both LookupNotFound and LookupUnreachable collapse into "movie
// unknown to us" — that conflation is inherited from the service this
// replaces, not a design ideal; the Status field keeps the distinction
// recoverable for future callers.
type MovieResult struct {
	Status MovieLookupStatus
	Movie  *domain.Movie
}

// MovieCache holds transiently cached movies in front of the catalog.
// Entries are never written back to the collaborator.
type MovieCache interface {
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	SetMovie(ctx context.Context, movie *domain.Movie) error
}

// CatalogClient queries the movie service for one movie by id. A single
// attempt with a short timeout, no retries.
type CatalogClient struct {
	baseURL string
	http    *http.Client
	cache   MovieCache
}

func NewCatalogClient(baseURL string, timeout time.Duration, cache MovieCache) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

func (c *CatalogClient) Fetch(ctx context.Context, id string) MovieResult {
	if c.cache != nil {
		if m, err := c.cache.GetMovie(ctx, id); err == nil && m != nil {
			return MovieResult{Status: LookupFound, Movie: m}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/movies/%s", c.baseURL, id), nil)
	if err != nil {
		return MovieResult{Status: LookupUnreachable}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return MovieResult{Status: LookupUnreachable}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var m domain.Movie
		if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
			return MovieResult{Status: LookupUnreachable}
		}
		if c.cache != nil {
			_ = c.cache.SetMovie(ctx, &m)
		}
		return MovieResult{Status: LookupFound, Movie: &m}
	case http.StatusNotFound:
		return MovieResult{Status: LookupNotFound}
	default:
		return MovieResult{Status: LookupUnreachable}
	}
}
