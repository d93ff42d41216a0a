package domain

import "errors"

// RatingSystem selects how a profile's ratings are displayed.
type RatingSystem string

const (
	RatingSystemStars    RatingSystem = "stars"
	RatingSystemTierlist RatingSystem = "tierlist"
)

// TierCount is the number of ordered tiers in the tierlist display mode.
const TierCount = 7

// DefaultTierNames are the tier labels assigned to every new profile,
// ordered worst to best.
var DefaultTierNames = [TierCount]string{
	"Unwatchable",
	"Awful",
	"Bad",
	"Good",
	"Great",
	"Excellent",
	"Masterpiece",
}

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileExists       = errors.New("profile already exists for identity")
	ErrHandleTaken         = errors.New("handle already reserved")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Preferences holds a profile's rating-display settings.
type Preferences struct {
	RatingSystem RatingSystem      `json:"rating_system"`
	TierNames    [TierCount]string `json:"tier_names"`
}

// DefaultPreferences returns the settings every new profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		RatingSystem: RatingSystemTierlist,
		TierNames:    DefaultTierNames,
	}
}

// User is a profile bound to an external identity and a reserved handle.
type User struct {
	UID         string      `json:"uid"`
	Handle      Handle      `json:"handle"`
	DisplayName string      `json:"display_name"`
	PhotoURL    string      `json:"photo_url"`
	Bio         string      `json:"bio"`
	Preferences Preferences `json:"preferences"`
}

// Reservation binds a handle to the identity that claimed it. A reservation
// is only ever created together with its owning profile and is never mutated
// afterwards; the reservations collection is the single source of truth for
// handle uniqueness.
type Reservation struct {
	Handle Handle `json:"handle"`
	UID    string `json:"uid"`
}

// Identity is the assertion produced by the external identity provider.
type Identity struct {
	UID         string
	DisplayName string
	PhotoURL    string
}
