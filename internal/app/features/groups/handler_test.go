package groups_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huddlehq/huddle/internal/app/features/groups"
	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return groups.NewHandler(groupstore.New(db), zap.NewNop()), db
}

func TestServeCreateGroup(t *testing.T) {
	handler, db := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeCreateGroup(rec, testutil.JSONRequest(t, "POST", "/creategroup", map[string]any{
		"creatoruserid":         "creator-1",
		"project_name":          "Campus Navigator",
		"description_objective": "Indoor maps",
		"preferred_team_size":   "4 members",
		"required_skills":       []string{"go"},
		"project_timeline":      "2 months",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		GroupID string `json:"groupId"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.Success || resp.GroupID == "" {
		t.Fatalf("unexpected response %+v", resp)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := db.Collection("groups").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 group stored, got %d", n)
	}
}

func TestServeCreateGroup_BlankName(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeCreateGroup(rec, testutil.JSONRequest(t, "POST", "/creategroup", map[string]any{
		"creatoruserid": "creator-1",
		"project_name":  "   ",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestServeAvailableGroups_Annotations(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Fixture team size is "4 members"; three of four seats taken.
	fix.CreateGroup(ctx, "Roomy", "creator-1", "m2", "m3")
	// Full at the parsed cap.
	full := fix.CreateGroup(ctx, "Packed", "creator-1", "m2", "m3", "m4")
	_ = full

	req := httptest.NewRequest("GET", "/getavailablegroups?userId=m2", nil)
	rec := httptest.NewRecorder()
	handler.ServeAvailableGroups(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Groups  []struct {
			ProjectName string `json:"projectname"`
			MemberCount int    `json:"memberCount"`
			MaxMembers  *int   `json:"maxMembers"`
			IsFull      bool   `json:"isFull"`
			IsMember    bool   `json:"isMember"`
		} `json:"groups"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(resp.Groups))
	}
	for _, g := range resp.Groups {
		if g.MaxMembers == nil || *g.MaxMembers != 4 {
			t.Errorf("group %q: expected maxMembers 4, got %v", g.ProjectName, g.MaxMembers)
		}
		if !g.IsMember {
			t.Errorf("group %q: expected isMember for m2", g.ProjectName)
		}
		switch g.ProjectName {
		case "Roomy":
			if g.IsFull || g.MemberCount != 3 {
				t.Errorf("Roomy misannotated: %+v", g)
			}
		case "Packed":
			if !g.IsFull || g.MemberCount != 4 {
				t.Errorf("Packed misannotated: %+v", g)
			}
		default:
			t.Errorf("unexpected group %q", g.ProjectName)
		}
	}
}

func TestServeAvailableGroups_UnparseableTeamSize(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("groups").InsertOne(ctx, map[string]any{
		"creatoruserid":       "creator-1",
		"project_name":        "",
		"preferred_team_size": "as many as it takes",
		"members":             []string{"creator-1"},
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeAvailableGroups(rec, httptest.NewRequest("GET", "/getavailablegroups", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Groups []struct {
			ProjectName string `json:"projectname"`
			MaxMembers  *int   `json:"maxMembers"`
			IsFull      bool   `json:"isFull"`
			IsMember    bool   `json:"isMember"`
		} `json:"groups"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(resp.Groups))
	}
	g := resp.Groups[0]
	if g.MaxMembers != nil {
		t.Errorf("expected null maxMembers for unparseable size, got %v", *g.MaxMembers)
	}
	if g.IsFull {
		t.Error("expected isFull=false when the cap is unparseable")
	}
	if g.ProjectName != "Unnamed Group" {
		t.Errorf("expected the placeholder name, got %q", g.ProjectName)
	}
	if g.IsMember {
		t.Error("expected isMember=false without a requesting user")
	}
}

func TestServeAvailableGroups_PostBodyUserID(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fix.CreateGroup(ctx, "Mine", "me")

	rec := httptest.NewRecorder()
	handler.ServeAvailableGroups(rec, testutil.JSONRequest(t, "POST", "/getavailablegroups", map[string]any{
		"userId": "me",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Groups []struct {
			IsMember bool `json:"isMember"`
		} `json:"groups"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Groups) != 1 || !resp.Groups[0].IsMember {
		t.Errorf("expected isMember from the POST body user id, got %+v", resp.Groups)
	}
}

func TestServeJoinGroup(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fix.CreateGroup(ctx, "Campus Navigator", "creator-1")

	rec := httptest.NewRecorder()
	handler.ServeJoinGroup(rec, testutil.JSONRequest(t, "POST", "/joingroup", map[string]any{
		"user_id":  "joiner-1",
		"group_id": g.ID.Hex(),
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.HasMember("joiner-1") {
		t.Error("expected joiner-1 added")
	}
}

func TestServeJoinGroup_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeJoinGroup(rec, testutil.JSONRequest(t, "POST", "/joingroup", map[string]any{
		"user_id":  "joiner-1",
		"group_id": "64f000000000000000000000",
	}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestServeLeaveGroup(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fix.CreateGroup(ctx, "Campus Navigator", "creator-1", "joiner-1")

	rec := httptest.NewRecorder()
	handler.ServeLeaveGroup(rec, testutil.JSONRequest(t, "POST", "/leavegroup", map[string]any{
		"user_id":  "joiner-1",
		"group_id": g.ID.Hex(),
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	got, err := store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.HasMember("joiner-1") {
		t.Error("expected joiner-1 removed")
	}
}

func TestServeMyGroups(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix.CreateGroup(ctx, "Mine", "me")
	fix.CreateGroup(ctx, "Theirs", "someone-else")

	rec := httptest.NewRecorder()
	handler.ServeMyGroups(rec, httptest.NewRequest("GET", "/getmygroups?userId=me", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Groups  []struct {
			GroupID   string `json:"groupId"`
			GroupName string `json:"groupName"`
		} `json:"groups"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Groups) != 1 || resp.Groups[0].GroupName != "Mine" {
		t.Errorf("unexpected groups %+v", resp.Groups)
	}
}

func TestServeMyGroups_MissingUserID(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeMyGroups(rec, httptest.NewRequest("GET", "/getmygroups", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}
