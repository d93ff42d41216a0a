package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rankio/rankio-api/internal/api/metrics"
	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

// ProfileService implements profile creation and lookup. Creation is the
// reservation commit: profile and reservation are written as one atomic
// unit, with uniqueness enforced by the store at write time rather than by
// any earlier availability read.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

// CreateProfile validates the candidate handle, builds the profile with
// default preferences, and commits profile + reservation atomically.
// An earlier availability check is only a hint; the commit may still lose
// the race and return domain.ErrHandleTaken.
func (s *ProfileService) CreateProfile(ctx context.Context, in ports.CreateProfileInput) (*domain.User, error) {
	handle, err := domain.ParseHandle(in.Handle)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UID:         in.Identity.UID,
		Handle:      handle,
		DisplayName: in.Identity.DisplayName,
		PhotoURL:    in.Identity.PhotoURL,
		Bio:         "",
		Preferences: domain.DefaultPreferences(),
	}

	if err := s.repo.CreateWithReservation(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrHandleTaken):
			metrics.ReservationCommits.WithLabelValues("conflict").Inc()
			s.log.Info().Str("handle", handle.String()).Str("uid", in.Identity.UID).Msg("handle claimed by another identity between check and commit")
		case errors.Is(err, domain.ErrProfileExists):
			metrics.ReservationCommits.WithLabelValues("exists").Inc()
		default:
			metrics.ReservationCommits.WithLabelValues("error").Inc()
			s.log.Error().Err(err).Str("handle", handle.String()).Msg("reservation commit failed")
		}
		return nil, err
	}

	metrics.ReservationCommits.WithLabelValues("created").Inc()
	s.log.Info().Str("handle", handle.String()).Str("uid", in.Identity.UID).Msg("profile created")

	return user, nil
}

func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	h, err := domain.ParseHandle(handle)
	if err != nil {
		// A malformed handle can never have a profile.
		return nil, domain.ErrProfileNotFound
	}
	user, err := s.repo.FindByHandle(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("get profile by handle: %w", err)
	}
	return user, nil
}

func (s *ProfileService) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get profile by uid: %w", err)
	}
	return user, nil
}
