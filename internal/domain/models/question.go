// internal/domain/models/question.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is a Q&A board item with its answers embedded.
//
// Invariant: at most one embedded answer has Accepted=true at any time.
// The accept operation clears every flag before setting the target's.
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"questionId"`
	UserID    string             `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	UserPhoto string             `bson:"userPhoto" json:"userPhoto"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	Answers   []Answer           `bson:"answers" json:"answers"`
	Votes     int                `bson:"votes" json:"votes"`
	Views     int                `bson:"views" json:"views"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Answer is an embedded sub-document of Question. AnswerID is generated by
// the service layer, not the database. CreatedAt is stored as an RFC 3339
// string because that is what older records hold.
type Answer struct {
	AnswerID  string `bson:"answerId" json:"answerId"`
	UserID    string `bson:"userId" json:"userId"`
	UserName  string `bson:"userName" json:"userName"`
	UserPhoto string `bson:"userPhoto" json:"userPhoto"`
	Content   string `bson:"content" json:"content"`
	Votes     int    `bson:"votes" json:"votes"`
	Accepted  bool   `bson:"accepted" json:"accepted"`
	CreatedAt string `bson:"createdAt" json:"createdAt"`
}

// NormalizedAnswers reshapes the embedded answers with defaults for fields
// missing from older records: anonymous author, zero votes, not accepted.
func (q Question) NormalizedAnswers(now time.Time) []Answer {
	out := make([]Answer, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.UserName == "" {
			a.UserName = "Anonymous"
		}
		if a.CreatedAt == "" {
			a.CreatedAt = now.UTC().Format(time.RFC3339)
		}
		out = append(out, a)
	}
	return out
}
