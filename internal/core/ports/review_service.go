package ports

import (
	"context"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// CreateReviewInput carries a new review from the transport layer. The
// author is always derived from the acting identity, never client-supplied.
type CreateReviewInput struct {
	ActorUID string
	MovieID  string
	Rating   float64
	Body     string
	Favorite bool
}

// UpdateReviewInput edits an existing review owned by the acting identity.
type UpdateReviewInput struct {
	ID       string
	ActorUID string
	Rating   float64
	Body     string
	Favorite bool
}

// ReviewService manages movie reviews.
type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	// Update fails with domain.ErrNotReviewAuthor when the acting identity
	// does not own the review.
	Update(ctx context.Context, in UpdateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByAuthor(ctx context.Context, handle string) ([]*domain.Review, error)
}

// MovieService resolves movie snapshots by external id.
type MovieService interface {
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
}
