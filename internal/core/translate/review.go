package translate

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rankio/rankio-api/internal/core/domain"
)

// ReviewDoc is the stored shape of a review. The review id is the document
// key. Timestamps use the store's native datetime type; both are optional in
// old documents.
type ReviewDoc struct {
	Author    string              `bson:"author"`
	Movie     MovieDoc            `bson:"movie"`
	Rating    float64             `bson:"rating"`
	Body      string              `bson:"review"`
	Favorite  bool                `bson:"favorite,omitempty"`
	CreatedAt *primitive.DateTime `bson:"created_at,omitempty"`
	LastEdit  *primitive.DateTime `bson:"last_edit,omitempty"`
}

// ReviewToDoc converts a review to its stored shape. The full embedded
// snapshot is persisted, backdrop included, so the read path never has to
// refetch provider metadata to render a stored review.
func ReviewToDoc(r *domain.Review) ReviewDoc {
	return ReviewDoc{
		Author:    r.Author.String(),
		Movie:     MovieToDoc(r.Movie),
		Rating:    r.Rating,
		Body:      r.Body,
		Favorite:  r.Favorite,
		CreatedAt: millisToDateTime(r.CreatedAt),
		LastEdit:  millisToDateTime(r.LastEdit),
	}
}

// ReviewFromDoc restores a review from its stored shape. Optional fields
// pass through as stored; only the timestamps are defaulted, to 0, when
// absent.
func ReviewFromDoc(id string, d *ReviewDoc) (*domain.Review, error) {
	if d == nil {
		return nil, domain.ErrReviewNotFound
	}
	return &domain.Review{
		ID:        id,
		Author:    domain.Handle(d.Author),
		Movie:     MovieFromDoc(id, d.Movie),
		Rating:    d.Rating,
		Body:      d.Body,
		Favorite:  d.Favorite,
		CreatedAt: dateTimeToMillis(d.CreatedAt),
		LastEdit:  dateTimeToMillis(d.LastEdit),
	}, nil
}

func millisToDateTime(ms int64) *primitive.DateTime {
	if ms == 0 {
		return nil
	}
	dt := primitive.DateTime(ms)
	return &dt
}

func dateTimeToMillis(dt *primitive.DateTime) int64 {
	if dt == nil {
		return 0
	}
	return int64(*dt)
}
