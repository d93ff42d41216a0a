// Package translate is the stateless mapping layer between external/stored
// payload shapes and internal domain entities. Every function is pure and
// side-effect free; malformed input yields an error, never a partially
// populated entity.
package translate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// ErrMalformedPayload is returned when a payload is missing required fields.
var ErrMalformedPayload = errors.New("malformed payload")

// ReferenceLanguage is the provider language code whose content keeps its
// original-language title.
const ReferenceLanguage = "en"

// FlexID accepts a JSON string or number and normalizes it to a string.
// The external provider is not consistent about the type of its id field.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// MovieMetadata is the raw payload shape delivered by the external movie
// metadata provider.
type MovieMetadata struct {
	ID            FlexID `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	Language      string `json:"language"`
	Image         string `json:"image"`
	Backdrop      string `json:"backdrop,omitempty"`
}

// MovieFromMetadata normalizes a provider payload into a domain snapshot.
// Title resolution: content in the reference language keeps its original
// title, everything else uses the localized one. The alternate title is
// discarded; the normalization is one-way.
func MovieFromMetadata(m MovieMetadata) (*domain.Movie, error) {
	title := m.Title
	if m.Language == ReferenceLanguage {
		title = m.OriginalTitle
	}

	if m.ID == "" {
		return nil, fmt.Errorf("movie metadata missing id: %w", ErrMalformedPayload)
	}
	if title == "" {
		return nil, fmt.Errorf("movie metadata missing title: %w", ErrMalformedPayload)
	}
	if m.Image == "" {
		return nil, fmt.Errorf("movie metadata missing image: %w", ErrMalformedPayload)
	}

	return &domain.Movie{
		ID:       m.ID.String(),
		Title:    title,
		Image:    m.Image,
		Backdrop: m.Backdrop,
	}, nil
}

// MovieDoc is the stored shape of a review's embedded movie snapshot.
type MovieDoc struct {
	Title    string `bson:"title" json:"title"`
	Image    string `bson:"image" json:"image"`
	Backdrop string `bson:"backdrop,omitempty" json:"backdrop,omitempty"`
}

// MovieToDoc converts an embedded snapshot to its stored shape. The movie id
// is not persisted here: the snapshot is a denormalized copy and the id adds
// nothing the review does not already carry.
func MovieToDoc(m domain.Movie) MovieDoc {
	return MovieDoc{
		Title:    m.Title,
		Image:    m.Image,
		Backdrop: m.Backdrop,
	}
}

// MovieFromDoc restores an embedded snapshot. The id is the review's own id,
// mirroring how the snapshot was keyed at write time.
func MovieFromDoc(id string, d MovieDoc) domain.Movie {
	return domain.Movie{
		ID:       id,
		Title:    d.Title,
		Image:    d.Image,
		Backdrop: d.Backdrop,
	}
}
