// internal/domain/models/discussion.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discussion is a per-group chat room with its message log embedded.
//
// Access is gated by the owning group's live member list, not by
// Participants: Participants records who has spoken (plus the creator),
// and sending a message adds the sender if absent.
type Discussion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"discussionId"`
	GroupID       string             `bson:"groupId" json:"groupId"`
	GroupName     string             `bson:"groupName" json:"groupName"`
	RoomName      string             `bson:"roomName" json:"roomName"`
	Topic         string             `bson:"topic" json:"topic"`
	CreatedBy     string             `bson:"createdBy" json:"createdBy"`
	CreatedByName string             `bson:"createdByName" json:"createdByName"`
	Participants  []string           `bson:"participants" json:"participants"`
	Messages      []Message          `bson:"messages" json:"messages"`

	// Denormalized snapshot of the latest message, kept in the same update
	// that appends it.
	LastMessage     string    `bson:"lastMessage" json:"lastMessage"`
	LastMessageTime time.Time `bson:"lastMessageTime" json:"lastMessageTime"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether the user has spoken in (or created)
// this discussion.
func (d Discussion) HasParticipant(userID string) bool {
	for _, p := range d.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Message is an embedded sub-document of Discussion. MessageID comes from
// the service layer; Timestamp is an RFC 3339 string as stored by earlier
// versions.
type Message struct {
	MessageID string `bson:"messageId" json:"messageId"`
	UserID    string `bson:"userId" json:"userId"`
	UserName  string `bson:"userName" json:"userName"`
	UserPhoto string `bson:"userPhoto" json:"userPhoto"`
	Content   string `bson:"content" json:"content"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
}
