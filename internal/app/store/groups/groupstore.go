// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// Create inserts a new group with the creator as the sole member.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	g.ID = primitive.NewObjectID()
	g.Members = []string{g.CreatorUserID}
	if g.RequiredSkills == nil {
		g.RequiredSkills = []string{}
	}
	g.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// GetByID loads a group by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// List returns every group, newest first.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMember adds the user to the member set. $addToSet keeps the list a
// set while preserving insertion order, so the creator stays first. The
// capacity cap is advisory and deliberately not enforced here.
// Returns mongo.ErrNoDocuments when the group is absent.
func (s *Store) AddMember(ctx context.Context, groupID primitive.ObjectID, userID string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": groupID},
		bson.M{"$addToSet": bson.M{"members": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveMember pulls the user from the member set; a no-op when they are
// not in it. Returns mongo.ErrNoDocuments when the group is absent.
func (s *Store) RemoveMember(ctx context.Context, groupID primitive.ObjectID, userID string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": groupID},
		bson.M{"$pull": bson.M{"members": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListByMember returns every group the user belongs to, full documents.
func (s *Store) ListByMember(ctx context.Context, userID string) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{"members": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupRef is the id+name projection used by the my-groups listing.
type GroupRef struct {
	ID          primitive.ObjectID `bson:"_id"`
	ProjectName string             `bson:"project_name"`
}

// ListRefsByMember returns id+name for every group the user belongs to.
func (s *Store) ListRefsByMember(ctx context.Context, userID string) ([]GroupRef, error) {
	cur, err := s.c.Find(ctx, bson.M{"members": userID},
		options.Find().SetProjection(bson.M{"_id": 1, "project_name": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var refs []GroupRef
	if err := cur.All(ctx, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
