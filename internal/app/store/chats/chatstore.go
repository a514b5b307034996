// internal/app/store/chats/chatstore.go
//
// The chat log lives in its own database, separate from the student
// network collections, and has no referential integrity to users.
package chatstore

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListLimit caps how many entries a log read returns.
const ListLimit = 100

// DefaultRoom is used when a client saves a chat without naming a room.
const DefaultRoom = "general"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("chats")}
}

// Save appends one entry to the log.
func (s *Store) Save(ctx context.Context, e models.ChatEntry) (models.ChatEntry, error) {
	e.ID = primitive.NewObjectID()
	if e.Room == "" {
		e.Room = DefaultRoom
	}
	e.Timestamp = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.ChatEntry{}, err
	}
	return e, nil
}

// ListRecent returns the newest ListLimit entries for the room, or across
// all rooms when room is empty.
func (s *Store) ListRecent(ctx context.Context, room string) ([]models.ChatEntry, error) {
	query := bson.M{}
	if room != "" {
		query["room"] = room
	}
	cur, err := s.c.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(ListLimit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ChatEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
