// internal/app/store/discussions/discussionstore.go
package discussionstore

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListLimit caps how many discussions a listing returns.
const ListLimit = 50

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("discussions")}
}

// Create inserts a room seeded with the creator as sole participant and
// an empty message log.
func (s *Store) Create(ctx context.Context, d models.Discussion) (models.Discussion, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.Participants = []string{d.CreatedBy}
	d.Messages = []models.Message{}
	d.LastMessage = ""
	d.LastMessageTime = now
	d.CreatedAt = now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Discussion{}, err
	}
	return d, nil
}

// GetByID loads a discussion by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Discussion, error) {
	var d models.Discussion
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.Discussion{}, err
	}
	return d, nil
}

// ListForGroups returns discussions owned by any of the groups, most
// recent activity first, capped at ListLimit.
func (s *Store) ListForGroups(ctx context.Context, groupIDs []string) ([]models.Discussion, error) {
	if len(groupIDs) == 0 {
		return []models.Discussion{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"groupId": bson.M{"$in": groupIDs}},
		options.Find().
			SetSort(bson.D{{Key: "lastMessageTime", Value: -1}}).
			SetLimit(ListLimit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var discussions []models.Discussion
	if err := cur.All(ctx, &discussions); err != nil {
		return nil, err
	}
	return discussions, nil
}

// AppendMessage appends the message, refreshes the last-message snapshot,
// and adds the sender to participants if absent, all in one update so the
// document never shows a partial append. Returns mongo.ErrNoDocuments
// when the discussion is absent.
func (s *Store) AppendMessage(ctx context.Context, discussionID primitive.ObjectID, m models.Message, at time.Time) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": discussionID}, bson.M{
		"$push": bson.M{"messages": m},
		"$set": bson.M{
			"lastMessage":     m.Content,
			"lastMessageTime": at.UTC(),
		},
		"$addToSet": bson.M{"participants": m.UserID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
