package poststore_test

import (
	"fmt"
	"testing"
	"time"

	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"github.com/huddlehq/huddle/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Post{
		UserID:   "user-1",
		UserName: "Ava Chen",
		Content:  "Shipped our first prototype today",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if created.Likes == nil {
		t.Error("expected likes to default to an empty slice")
	}
	if created.Comments == nil {
		t.Error("expected comments to default to an empty slice")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestStore_ListRecent_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, models.Post{
			UserID:  "user-1",
			Content: fmt.Sprintf("post %d", i),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		// createdAt is stored at millisecond precision; keep the
		// ordering unambiguous.
		time.Sleep(2 * time.Millisecond)
	}

	posts, err := store.ListRecent(ctx)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Content != "post 2" {
		t.Errorf("expected newest post first, got %q", posts[0].Content)
	}
}

func TestStore_ListRecent_CapsAtFeedLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < poststore.FeedLimit+5; i++ {
		if _, err := store.Create(ctx, models.Post{
			UserID:  "user-1",
			Content: fmt.Sprintf("post %d", i),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	posts, err := store.ListRecent(ctx)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(posts) != poststore.FeedLimit {
		t.Errorf("expected feed capped at %d, got %d", poststore.FeedLimit, len(posts))
	}
}
