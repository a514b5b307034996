package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user. The stored password hash is fake; use
// the account handlers when real credential checks matter.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: "$2a$12$fixture.hash.not.a.real.credential",
		FullName:     fullName,
		University:   "Test University",
		Branch:       "CSE",
		AcademicYear: "3",
		Skills:       []string{"go"},
		Bio:          "fixture bio",
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateGroup creates a test group with the given creator and extra
// members appended after them.
func (f *Fixtures) CreateGroup(ctx context.Context, projectName, creatorID string, extraMembers ...string) models.Group {
	f.t.Helper()

	group := models.Group{
		ID:                   primitive.NewObjectID(),
		CreatorUserID:        creatorID,
		ProjectName:          projectName,
		DescriptionObjective: "Test objective",
		PreferredTeamSize:    "4 members",
		RequiredSkills:       []string{"go", "mongodb"},
		ProjectTimeline:      "3 months",
		Members:              append([]string{creatorID}, extraMembers...),
		CreatedAt:            time.Now().UTC(),
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateQuestion creates a test question with the given answers embedded.
func (f *Fixtures) CreateQuestion(ctx context.Context, userID, title string, answers ...models.Answer) models.Question {
	f.t.Helper()

	if answers == nil {
		answers = []models.Answer{}
	}
	q := models.Question{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		UserName:  "Fixture User",
		Title:     title,
		Content:   "fixture question body",
		Tags:      []string{"testing"},
		Answers:   answers,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("questions").InsertOne(ctx, q); err != nil {
		f.t.Fatalf("failed to create test question: %v", err)
	}
	return q
}

// Answer builds an embedded answer for use with CreateQuestion.
func (f *Fixtures) Answer(userID, content string) models.Answer {
	f.t.Helper()
	return models.Answer{
		AnswerID:  primitive.NewObjectID().Hex(),
		UserID:    userID,
		UserName:  "Fixture Answerer",
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// CreateDiscussion creates a test discussion owned by the given group.
func (f *Fixtures) CreateDiscussion(ctx context.Context, roomName, groupID, creatorID string) models.Discussion {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Discussion{
		ID:              primitive.NewObjectID(),
		GroupID:         groupID,
		GroupName:       "Fixture Group",
		RoomName:        roomName,
		Topic:           "fixture topic",
		CreatedBy:       creatorID,
		CreatedByName:   "Fixture User",
		Participants:    []string{creatorID},
		Messages:        []models.Message{},
		LastMessageTime: now,
		CreatedAt:       now,
	}

	if _, err := f.db.Collection("discussions").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test discussion: %v", err)
	}
	return d
}

// RawQuestion inserts an untyped question document, useful for exercising
// the defensive reshaping of records written by older versions.
func (f *Fixtures) RawQuestion(ctx context.Context, doc bson.M) primitive.ObjectID {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, err := f.db.Collection("questions").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert raw question: %v", err)
	}
	return id
}
