// internal/domain/models/chat.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatEntry is one line of the flat chat log. It lives in the separate
// chat database and has no referential integrity to Users.
type ChatEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"chatId"`
	Username  string             `bson:"username" json:"username"`
	Message   string             `bson:"message" json:"message"`
	Room      string             `bson:"room" json:"room"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
