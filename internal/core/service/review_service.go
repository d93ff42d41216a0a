package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

// ReviewService implements review creation, editing and reads. The author of
// every write is resolved from the acting identity's profile; ownership is
// the only authorization rule in the system.
type ReviewService struct {
	reviews  ports.ReviewRepository
	profiles ports.ProfileRepository
	movies   ports.MovieService
	log      zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, profiles ports.ProfileRepository, movies ports.MovieService, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, profiles: profiles, movies: movies, log: log}
}

// Create resolves the actor's handle and the movie snapshot, then persists a
// new review. The snapshot is embedded by value: later provider changes
// never rewrite an existing review.
func (s *ReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	author, err := s.profiles.FindByUID(ctx, in.ActorUID)
	if err != nil {
		return nil, fmt.Errorf("create review: resolve author: %w", err)
	}

	movie, err := s.movies.GetMovie(ctx, in.MovieID)
	if err != nil {
		return nil, fmt.Errorf("create review: resolve movie: %w", err)
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		Author:    author.Handle,
		Movie:     *movie,
		Rating:    in.Rating,
		Body:      in.Body,
		Favorite:  in.Favorite,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		s.log.Error().Err(err).Str("author", author.Handle.String()).Str("movie_id", in.MovieID).Msg("failed to create review")
		return nil, err
	}

	s.log.Info().Str("review_id", review.ID).Str("author", author.Handle.String()).Str("movie", movie.Title).Msg("review created")
	return review, nil
}

// Update edits an existing review. Only the author may edit; a successful
// edit stamps LastEdit while CreatedAt is preserved.
func (s *ReviewService) Update(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	actor, err := s.profiles.FindByUID(ctx, in.ActorUID)
	if err != nil {
		return nil, fmt.Errorf("update review: resolve actor: %w", err)
	}
	if review.Author != actor.Handle {
		return nil, domain.ErrNotReviewAuthor
	}

	review.Rating = in.Rating
	review.Body = in.Body
	review.Favorite = in.Favorite
	review.LastEdit = time.Now().UnixMilli()

	if err := s.reviews.Update(ctx, review); err != nil {
		s.log.Error().Err(err).Str("review_id", review.ID).Msg("failed to update review")
		return nil, err
	}

	s.log.Info().Str("review_id", review.ID).Str("author", actor.Handle.String()).Msg("review updated")
	return review, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListByAuthor(ctx context.Context, handle string) ([]*domain.Review, error) {
	h, err := domain.ParseHandle(handle)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	reviews, err := s.reviews.ListByAuthor(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
