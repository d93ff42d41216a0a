package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/api/metrics"
	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

// MovieCache abstracts the snapshot cache (Redis). A miss is (nil, nil).
type MovieCache interface {
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Set(ctx context.Context, movie *domain.Movie) error
}

// MovieService resolves movie snapshots through the external metadata
// provider, with a cache in front. Snapshots are immutable, so a cached
// entry is always as good as a fresh fetch.
type MovieService struct {
	provider ports.MetadataProvider
	cache    MovieCache
	log      zerolog.Logger
}

func NewMovieService(provider ports.MetadataProvider, cache MovieCache, log zerolog.Logger) *MovieService {
	return &MovieService{provider: provider, cache: cache, log: log}
}

// GetMovie returns the snapshot for id. Cache failures are logged and
// treated as misses; they never fail the request.
func (s *MovieService) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("movie_id", id).Msg("movie cache read failed")
		} else if cached != nil {
			metrics.MovieCacheOps.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.MovieCacheOps.WithLabelValues("miss").Inc()
	}

	movie, err := s.provider.FetchMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, movie); err != nil {
			s.log.Warn().Err(err).Str("movie_id", id).Msg("movie cache write failed")
		}
	}

	return movie, nil
}
