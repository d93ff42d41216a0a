package translate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankio/rankio-api/internal/core/domain"
)

func TestMovieFromMetadata_LanguageResolution(t *testing.T) {
	base := MovieMetadata{
		ID:            "550",
		Title:         "El club de la pelea",
		OriginalTitle: "Fight Club",
		Image:         "/poster.jpg",
	}

	t.Run("reference language keeps original title", func(t *testing.T) {
		m := base
		m.Language = "en"
		movie, err := MovieFromMetadata(m)
		require.NoError(t, err)
		assert.Equal(t, "Fight Club", movie.Title)
	})

	t.Run("other language uses localized title", func(t *testing.T) {
		m := base
		m.Language = "es"
		movie, err := MovieFromMetadata(m)
		require.NoError(t, err)
		assert.Equal(t, "El club de la pelea", movie.Title)
	})
}

func TestMovieFromMetadata_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MovieMetadata)
	}{
		{"missing id", func(m *MovieMetadata) { m.ID = "" }},
		{"missing image", func(m *MovieMetadata) { m.Image = "" }},
		{"missing localized title", func(m *MovieMetadata) { m.Language = "fr"; m.Title = "" }},
		{"missing original title in reference language", func(m *MovieMetadata) { m.Language = "en"; m.OriginalTitle = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MovieMetadata{
				ID:            "603",
				Title:         "Matrix",
				OriginalTitle: "The Matrix",
				Language:      "en",
				Image:         "/matrix.jpg",
			}
			tc.mutate(&m)
			movie, err := MovieFromMetadata(m)
			require.ErrorIs(t, err, ErrMalformedPayload)
			assert.Nil(t, movie)
		})
	}
}

func TestMovieFromMetadata_CarriesBackdrop(t *testing.T) {
	movie, err := MovieFromMetadata(MovieMetadata{
		ID:            "27205",
		Title:         "Origen",
		OriginalTitle: "Inception",
		Language:      "en",
		Image:         "/inception.jpg",
		Backdrop:      "/inception-backdrop.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/inception-backdrop.jpg", movie.Backdrop)
}

func TestMovieDoc_RoundTrip(t *testing.T) {
	original := domain.Movie{
		ID:       "r-1",
		Title:    "Inception",
		Image:    "/inception.jpg",
		Backdrop: "/inception-backdrop.jpg",
	}

	restored := MovieFromDoc("r-1", MovieToDoc(original))
	assert.Equal(t, original, restored, "title, image and backdrop must survive a storage round trip")
}

func TestFlexID_UnmarshalJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var m MovieMetadata
		require.NoError(t, json.Unmarshal([]byte(`{"id": 550}`), &m))
		assert.Equal(t, FlexID("550"), m.ID)
	})

	t.Run("string", func(t *testing.T) {
		var m MovieMetadata
		require.NoError(t, json.Unmarshal([]byte(`{"id": "550"}`), &m))
		assert.Equal(t, FlexID("550"), m.ID)
	})

	t.Run("object rejected", func(t *testing.T) {
		var m MovieMetadata
		assert.Error(t, json.Unmarshal([]byte(`{"id": {"v": 1}}`), &m))
	})
}
