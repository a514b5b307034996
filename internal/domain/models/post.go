// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed entry. Author name and photo are denormalized at write
// time so the feed renders without user lookups. Append-only: there are no
// edit or delete operations.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"postId"`
	UserID    string             `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	UserPhoto string             `bson:"userPhoto" json:"userPhoto"`
	Content   string             `bson:"content" json:"content"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	Likes     []string           `bson:"likes" json:"likes"`
	Comments  []bson.M           `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
