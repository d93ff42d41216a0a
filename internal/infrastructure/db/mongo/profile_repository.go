package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/translate"
)

const (
	profilesCollection     = "profiles"
	reservationsCollection = "reservations"
)

// ProfileRepository persists profiles and handle reservations. Profiles are
// keyed by identity uid, reservations by normalized handle; relying on _id
// for both makes the store's unique-key enforcement the real uniqueness
// check at commit time.
type ProfileRepository struct {
	client       *mongo.Client
	profiles     *mongo.Collection
	reservations *mongo.Collection
}

func NewProfileRepository(client *mongo.Client, db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		client:       client,
		profiles:     db.Collection(profilesCollection),
		reservations: db.Collection(reservationsCollection),
	}
}

type profileDoc struct {
	ID                string `bson:"_id"`
	translate.UserDoc `bson:",inline"`
}

type reservationDoc struct {
	ID  string `bson:"_id"` // normalized handle
	UID string `bson:"uid"`
}

// CreateWithReservation inserts the profile document and the reservation
// record inside one transaction: if either insert fails, neither is
// applied. A duplicate reservation key means the handle was claimed between
// the caller's availability check and this commit.
func (r *ProfileRepository) CreateWithReservation(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		res := reservationDoc{ID: user.Handle.String(), UID: user.UID}
		if _, err := r.reservations.InsertOne(sc, res); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrHandleTaken
			}
			return nil, fmt.Errorf("insert reservation: %w", err)
		}

		doc := profileDoc{ID: user.UID, UserDoc: translate.UserToDoc(user)}
		if _, err := r.profiles.InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrProfileExists
			}
			return nil, fmt.Errorf("insert profile: %w", err)
		}

		return nil, nil
	})
	return err
}

func (r *ProfileRepository) FindByUID(ctx context.Context, uid string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	if err := r.profiles.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	// uid comes from the document key, never the body.
	return translate.UserFromDoc(doc.ID, &doc.UserDoc)
}

func (r *ProfileRepository) FindByHandle(ctx context.Context, handle domain.Handle) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	if err := r.profiles.FindOne(ctx, bson.M{"handle": handle.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return translate.UserFromDoc(doc.ID, &doc.UserDoc)
}

// LookupReservation is the availability read. Its answer is advisory only;
// CreateWithReservation performs the authoritative check.
func (r *ProfileRepository) LookupReservation(ctx context.Context, handle domain.Handle) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reservationDoc
	if err := r.reservations.FindOne(ctx, bson.M{"_id": handle.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lookup reservation: %w", err)
	}
	return &domain.Reservation{Handle: domain.Handle(doc.ID), UID: doc.UID}, nil
}

// EnsureIndexes creates the secondary indexes the profile queries rely on.
// The uniqueness-bearing keys (uid, handle) are _id fields and need none.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "handle", Value: 1}},
	})
	return err
}
