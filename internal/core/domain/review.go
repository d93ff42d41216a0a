package domain

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewAuthor = errors.New("acting identity is not the review author")
)

// Review is a movie review owned by its author. Timestamps are epoch
// milliseconds; a zero LastEdit means the review was never edited.
type Review struct {
	ID        string  `json:"id"`
	Author    Handle  `json:"author"`
	Movie     Movie   `json:"movie"`
	Rating    float64 `json:"rating"`
	Body      string  `json:"review"`
	Favorite  bool    `json:"favorite,omitempty"`
	CreatedAt int64   `json:"created_at"`
	LastEdit  int64   `json:"last_edit,omitempty"`
}
