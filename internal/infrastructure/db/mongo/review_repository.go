package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/translate"
)

const reviewsCollection = "reviews"

// ReviewRepository persists reviews, keyed by review id, with the author
// field queryable across the collection.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(reviewsCollection)}
}

type reviewDoc struct {
	ID                  string `bson:"_id"`
	translate.ReviewDoc `bson:",inline"`
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{ID: review.ID, ReviewDoc: translate.ReviewToDoc(review)}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{ID: review.ID, ReviewDoc: translate.ReviewToDoc(review)}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": review.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return translate.ReviewFromDoc(doc.ID, &doc.ReviewDoc)
}

func (r *ReviewRepository) ListByAuthor(ctx context.Context, author domain.Handle) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"author": author.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*domain.Review
	for cursor.Next(ctx) {
		var doc reviewDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		review, err := translate.ReviewFromDoc(doc.ID, &doc.ReviewDoc)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// EnsureIndexes creates the author index used by ListByAuthor.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
