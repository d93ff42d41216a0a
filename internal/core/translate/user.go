package translate

import "github.com/rankio/rankio-api/internal/core/domain"

// PreferencesDoc is the stored shape of rating-display preferences.
type PreferencesDoc struct {
	RatingSystem string                    `bson:"rating_system"`
	TierNames    [domain.TierCount]string  `bson:"tier_names"`
}

// UserDoc is the stored shape of a profile. The identity id is deliberately
// absent: it is the document key, never part of the body.
type UserDoc struct {
	Handle      string         `bson:"handle"`
	DisplayName string         `bson:"display_name"`
	PhotoURL    string         `bson:"photo_url"`
	Bio         string         `bson:"bio"`
	Preferences PreferencesDoc `bson:"preferences"`
}

// UserToDoc converts a profile to its stored shape, dropping the uid.
func UserToDoc(u *domain.User) UserDoc {
	return UserDoc{
		Handle:      u.Handle.String(),
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Bio:         u.Bio,
		Preferences: PreferencesDoc{
			RatingSystem: string(u.Preferences.RatingSystem),
			TierNames:    u.Preferences.TierNames,
		},
	}
}

// UserFromDoc restores a profile. The uid is sourced from the storage-layer
// document key; a nil doc yields an explicit absent result rather than a
// partially populated entity.
func UserFromDoc(uid string, d *UserDoc) (*domain.User, error) {
	if d == nil {
		return nil, domain.ErrProfileNotFound
	}
	return &domain.User{
		UID:         uid,
		Handle:      domain.Handle(d.Handle),
		DisplayName: d.DisplayName,
		PhotoURL:    d.PhotoURL,
		Bio:         d.Bio,
		Preferences: domain.Preferences{
			RatingSystem: domain.RatingSystem(d.Preferences.RatingSystem),
			TierNames:    d.Preferences.TierNames,
		},
	}, nil
}
