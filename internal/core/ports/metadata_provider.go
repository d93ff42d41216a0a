package ports

import (
	"context"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// MetadataProvider fetches movie metadata from the external provider and
// normalizes it into a domain snapshot.
type MetadataProvider interface {
	// FetchMovie returns domain.ErrMovieNotFound for unknown ids and
	// translate.ErrMalformedPayload (wrapped) when the provider response is
	// missing required fields.
	FetchMovie(ctx context.Context, id string) (*domain.Movie, error)
}
