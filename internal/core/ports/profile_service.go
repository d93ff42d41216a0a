package ports

import (
	"context"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// CreateProfileInput is the DTO passed from the transport layer to
// ProfileService.CreateProfile.
type CreateProfileInput struct {
	Identity domain.Identity
	// Handle is the raw candidate; the service normalizes and re-validates
	// it before committing.
	Handle string
}

// ProfileService creates and reads profiles.
type ProfileService interface {
	// CreateProfile atomically binds the chosen handle to the acting
	// identity, creating the profile and its reservation together.
	// Fails with domain.ErrHandleInvalid, domain.ErrHandleTaken (lost the
	// commit race) or domain.ErrProfileExists; any other error is transient.
	CreateProfile(ctx context.Context, in CreateProfileInput) (*domain.User, error)
	GetByHandle(ctx context.Context, handle string) (*domain.User, error)
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
}
