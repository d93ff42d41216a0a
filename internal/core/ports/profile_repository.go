package ports

import (
	"context"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles and their
// handle reservations.
type ProfileRepository interface {
	// CreateWithReservation writes the profile document and its reservation
	// record as a single atomic unit; if either write would fail, neither is
	// applied. Uniqueness is enforced by the store at write time: a handle
	// collision yields domain.ErrHandleTaken, a uid collision
	// domain.ErrProfileExists.
	CreateWithReservation(ctx context.Context, user *domain.User) error

	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	FindByHandle(ctx context.Context, handle domain.Handle) (*domain.User, error)

	// LookupReservation returns the reservation for handle, or
	// domain.ErrReservationNotFound when the handle is unclaimed.
	LookupReservation(ctx context.Context, handle domain.Handle) (*domain.Reservation, error)
}
