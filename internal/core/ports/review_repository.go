package ports

import (
	"context"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	// Update replaces the stored review. Returns domain.ErrReviewNotFound
	// when no review with the given id exists.
	Update(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// ListByAuthor returns all reviews by the given author, newest first.
	ListByAuthor(ctx context.Context, author domain.Handle) ([]*domain.Review, error)
}
