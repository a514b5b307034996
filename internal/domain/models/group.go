// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a student-formed project team.
//
// Members is an insertion-ordered set of user id strings with the creator
// always first. Set semantics (no duplicates) are enforced by the store's
// $addToSet updates, not by a uniqueness constraint.
//
// PreferredTeamSize is free text ("4 members", "3-5"); the numeric cap is
// derived at read time and never stored.
type Group struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatorUserID        string             `bson:"creatoruserid" json:"creatoruserid"`
	ProjectName          string             `bson:"project_name" json:"project_name"`
	DescriptionObjective string             `bson:"description_objective" json:"description_objective"`
	PreferredTeamSize    string             `bson:"preferred_team_size" json:"preferred_team_size"`
	RequiredSkills       []string           `bson:"required_skills" json:"required_skills"`
	ProjectTimeline      string             `bson:"project_timeline" json:"project_timeline"`
	Members              []string           `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// HasMember reports whether the user id is in the member set.
func (g Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}
