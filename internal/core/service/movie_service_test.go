package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/core/domain"
)

type stubProvider struct {
	movie *domain.Movie
	err   error
	calls int
}

func (p *stubProvider) FetchMovie(context.Context, string) (*domain.Movie, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	clone := *p.movie
	return &clone, nil
}

type stubMovieCache struct {
	entries map[string]*domain.Movie
	getErr  error
	setErr  error
}

func newStubMovieCache() *stubMovieCache {
	return &stubMovieCache{entries: make(map[string]*domain.Movie)}
}

func (c *stubMovieCache) Get(_ context.Context, id string) (*domain.Movie, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	movie, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *movie
	return &clone, nil
}

func (c *stubMovieCache) Set(_ context.Context, movie *domain.Movie) error {
	if c.setErr != nil {
		return c.setErr
	}
	clone := *movie
	c.entries[movie.ID] = &clone
	return nil
}

func TestMovieService_MissFetchesAndPopulates(t *testing.T) {
	provider := &stubProvider{movie: &domain.Movie{ID: "550", Title: "Fight Club", Image: "/p.jpg"}}
	cache := newStubMovieCache()
	svc := NewMovieService(provider, cache, zerolog.Nop())
	ctx := context.Background()

	movie, err := svc.GetMovie(ctx, "550")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Title != "Fight Club" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider fetch, got %d", provider.calls)
	}
	if _, ok := cache.entries["550"]; !ok {
		t.Fatalf("fetched snapshot must be cached")
	}
}

func TestMovieService_HitSkipsProvider(t *testing.T) {
	provider := &stubProvider{movie: &domain.Movie{ID: "550", Title: "Fight Club", Image: "/p.jpg"}}
	cache := newStubMovieCache()
	cache.entries["550"] = &domain.Movie{ID: "550", Title: "Fight Club", Image: "/p.jpg"}
	svc := NewMovieService(provider, cache, zerolog.Nop())

	if _, err := svc.GetMovie(context.Background(), "550"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 0 {
		t.Fatalf("cache hit must not reach the provider")
	}
}

func TestMovieService_CacheFailureIsMiss(t *testing.T) {
	provider := &stubProvider{movie: &domain.Movie{ID: "550", Title: "Fight Club", Image: "/p.jpg"}}
	cache := newStubMovieCache()
	cache.getErr = errors.New("redis down")
	svc := NewMovieService(provider, cache, zerolog.Nop())

	movie, err := svc.GetMovie(context.Background(), "550")
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if movie == nil || provider.calls != 1 {
		t.Fatalf("expected provider fallback, calls=%d", provider.calls)
	}
}

func TestMovieService_ProviderErrorPropagates(t *testing.T) {
	provider := &stubProvider{err: domain.ErrMovieNotFound}
	svc := NewMovieService(provider, newStubMovieCache(), zerolog.Nop())

	_, err := svc.GetMovie(context.Background(), "0")
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
