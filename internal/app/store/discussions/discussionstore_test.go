package discussionstore_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	discussionstore "github.com/huddlehq/huddle/internal/app/store/discussions"
	"github.com/huddlehq/huddle/internal/domain/models"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Discussion{
		GroupID:       primitive.NewObjectID().Hex(),
		GroupName:     "Campus Navigator",
		RoomName:      "standup",
		Topic:         "Daily sync",
		CreatedBy:     "creator-1",
		CreatedByName: "Ava Chen",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if len(created.Participants) != 1 || created.Participants[0] != "creator-1" {
		t.Errorf("expected the creator as sole participant, got %v", created.Participants)
	}
	if len(created.Messages) != 0 {
		t.Errorf("expected an empty message log, got %d messages", len(created.Messages))
	}
	if created.LastMessageTime.IsZero() {
		t.Error("expected lastMessageTime to be seeded")
	}
}

func TestStore_AppendMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fix.CreateDiscussion(ctx, "standup", primitive.NewObjectID().Hex(), "creator-1")

	now := time.Now().UTC()
	msg := models.Message{
		MessageID: uuid.NewString(),
		UserID:    "member-2",
		UserName:  "Sam Park",
		Content:   "Morning, all",
		Timestamp: now.Format(time.RFC3339),
	}
	if err := store.AppendMessage(ctx, d.ID, msg, now); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	got, err := store.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got.Messages))
	}
	if got.Messages[0].MessageID != msg.MessageID {
		t.Errorf("expected message id %q, got %q", msg.MessageID, got.Messages[0].MessageID)
	}
	if got.LastMessage != "Morning, all" {
		t.Errorf("expected last-message snapshot, got %q", got.LastMessage)
	}
	if !got.HasParticipant("member-2") {
		t.Error("expected the sender to be recorded as a participant")
	}
}

func TestStore_AppendMessage_ParticipantRecordedOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fix.CreateDiscussion(ctx, "standup", primitive.NewObjectID().Hex(), "creator-1")

	for i := 0; i < 3; i++ {
		now := time.Now().UTC()
		msg := models.Message{
			MessageID: uuid.NewString(),
			UserID:    "member-2",
			Content:   "another message",
			Timestamp: now.Format(time.RFC3339),
		}
		if err := store.AppendMessage(ctx, d.ID, msg, now); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
	}

	got, err := store.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Messages) != 3 {
		t.Errorf("expected 3 messages, got %d", len(got.Messages))
	}
	count := 0
	for _, p := range got.Participants {
		if p == "member-2" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the sender listed exactly once, got %d entries", count)
	}
}

func TestStore_AppendMessage_MissingDiscussion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AppendMessage(ctx, primitive.NewObjectID(), models.Message{
		MessageID: uuid.NewString(),
		UserID:    "member-2",
		Content:   "into the void",
	}, time.Now().UTC())
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_ListForGroups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupA := primitive.NewObjectID().Hex()
	groupB := primitive.NewObjectID().Hex()
	groupC := primitive.NewObjectID().Hex()

	older := fix.CreateDiscussion(ctx, "room-a", groupA, "creator-1")
	fix.CreateDiscussion(ctx, "room-b", groupB, "creator-1")
	fix.CreateDiscussion(ctx, "room-c", groupC, "creator-1")

	// Fresh activity moves a room to the top.
	now := time.Now().UTC().Add(time.Minute)
	err := store.AppendMessage(ctx, older.ID, models.Message{
		MessageID: uuid.NewString(),
		UserID:    "creator-1",
		Content:   "bump",
		Timestamp: now.Format(time.RFC3339),
	}, now)
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	discussions, err := store.ListForGroups(ctx, []string{groupA, groupB})
	if err != nil {
		t.Fatalf("ListForGroups failed: %v", err)
	}
	if len(discussions) != 2 {
		t.Fatalf("expected 2 discussions, got %d", len(discussions))
	}
	if discussions[0].RoomName != "room-a" {
		t.Errorf("expected the recently active room first, got %q", discussions[0].RoomName)
	}
	for _, d := range discussions {
		if d.GroupID == groupC {
			t.Errorf("room from an unrequested group leaked into the listing")
		}
	}
}

func TestStore_ListForGroups_NoGroups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discussionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	discussions, err := store.ListForGroups(ctx, nil)
	if err != nil {
		t.Fatalf("ListForGroups failed: %v", err)
	}
	if len(discussions) != 0 {
		t.Errorf("expected an empty listing, got %d", len(discussions))
	}
}
