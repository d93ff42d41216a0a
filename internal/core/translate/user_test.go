package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankio/rankio-api/internal/core/domain"
)

func TestUserFromDoc_UIDFromDocumentKey(t *testing.T) {
	doc := &UserDoc{
		Handle:      "alice",
		DisplayName: "Alice Example",
		PhotoURL:    "https://example.com/alice.png",
		Bio:         "watches too many movies",
		Preferences: PreferencesDoc{
			RatingSystem: "tierlist",
			TierNames:    domain.DefaultTierNames,
		},
	}

	user, err := UserFromDoc("uid-from-key", doc)
	require.NoError(t, err)
	assert.Equal(t, "uid-from-key", user.UID, "uid comes from the document key, not the body")
	assert.Equal(t, domain.Handle("alice"), user.Handle)
	assert.Equal(t, domain.RatingSystemTierlist, user.Preferences.RatingSystem)
}

func TestUserFromDoc_NilDoc(t *testing.T) {
	user, err := UserFromDoc("uid-1", nil)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Nil(t, user)
}

func TestUserToDoc_DropsUID(t *testing.T) {
	user := &domain.User{
		UID:         "uid-1",
		Handle:      "bob",
		DisplayName: "Bob",
		PhotoURL:    "https://example.com/bob.png",
		Bio:         "",
		Preferences: domain.DefaultPreferences(),
	}

	doc := UserToDoc(user)
	restored, err := UserFromDoc(user.UID, &doc)
	require.NoError(t, err)
	assert.Equal(t, user, restored)
}
