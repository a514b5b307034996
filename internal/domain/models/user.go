// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a student account.
//
// NOTE:
//   - PasswordHash is never serialized to JSON; responses use Profile.
//   - Field names in bson match the documents written by earlier versions
//     of the platform, so existing records keep decoding.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	PasswordHash    string             `bson:"password" json:"-"`
	FullName        string             `bson:"fullName" json:"fullName"`
	University      string             `bson:"university" json:"university"`
	Branch          string             `bson:"branch" json:"branch"`
	AcademicYear    string             `bson:"academicYear" json:"academicYear"`
	Skills          []string           `bson:"skills" json:"skills"`
	ProfilePhotoURL string             `bson:"profilePhotoUrl" json:"profilePhotoUrl"`
	CoverPhotoURL   string             `bson:"coverPhotoUrl" json:"coverPhotoUrl"`
	Bio             string             `bson:"bio" json:"bio"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Profile is the client-facing projection of a User. It is what login,
// signup, and lookups return; the password hash never appears here.
type Profile struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"fullName"`
	University      string   `json:"university"`
	Branch          string   `json:"branch"`
	AcademicYear    string   `json:"academicYear"`
	Skills          []string `json:"skills"`
	ProfilePhotoURL string   `json:"profilePhotoUrl"`
	CoverPhotoURL   string   `json:"coverPhotoUrl"`
	Bio             string   `json:"bio"`
}

// ToProfile projects the user for client responses.
func (u User) ToProfile() Profile {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return Profile{
		ID:              u.ID.Hex(),
		Email:           u.Email,
		FullName:        u.FullName,
		University:      u.University,
		Branch:          u.Branch,
		AcademicYear:    u.AcademicYear,
		Skills:          skills,
		ProfilePhotoURL: u.ProfilePhotoURL,
		CoverPhotoURL:   u.CoverPhotoURL,
		Bio:             u.Bio,
	}
}
