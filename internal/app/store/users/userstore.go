// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WelcomeBio is the default bio assigned to every new account.
const WelcomeBio = "Passionate student focused on learning and building innovative projects."

// ErrDuplicateEmail is returned when creating a user with an email that is
// already registered.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user. PasswordHash must already be hashed; empty
// bio/photo fields get their defaults here.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	if u.Skills == nil {
		u.Skills = []string{}
	}
	if u.Bio == "" {
		u.Bio = WelcomeBio
	}
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail looks up a user by email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether any user has this email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByAnyID resolves a user from a raw identifier string. Older records
// were written with heterogeneous keys, so the lookup falls back in order:
// ObjectID _id, string _id, then a separate "id" field. Returns
// mongo.ErrNoDocuments when nothing matches.
func (s *Store) GetByAnyID(ctx context.Context, raw string) (*models.User, error) {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		var u models.User
		if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err == nil {
			return &u, nil
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": raw}).Decode(&u)
	if err == nil {
		return &u, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if err := s.c.FindOne(ctx, bson.M{"id": raw}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the fields a profile update may touch. Nil pointers
// are left untouched, so updates are partial and idempotent.
type ProfileUpdate struct {
	FullName        *string
	Bio             *string
	ProfilePhotoURL *string
	CoverPhotoURL   *string
	Skills          []string
}

// UpdateProfile applies the recognized profile fields. Returns
// mongo.ErrNoDocuments when no user matches.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) error {
	set := bson.M{}
	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.ProfilePhotoURL != nil {
		set["profilePhotoUrl"] = *upd.ProfilePhotoURL
	}
	if upd.CoverPhotoURL != nil {
		set["coverPhotoUrl"] = *upd.CoverPhotoURL
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if len(set) == 0 {
		// Nothing recognized; still report NotFound for a missing user.
		err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
		return err
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
