package domain

import "errors"

var ErrMovieNotFound = errors.New("movie not found")

// Movie is an immutable snapshot of external movie metadata. Reviews embed
// it by value; it is a denormalized copy, not a live reference to the
// provider's record.
type Movie struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Backdrop string `json:"backdrop,omitempty"`
}
