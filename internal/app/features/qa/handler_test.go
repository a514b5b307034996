package qa_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huddlehq/huddle/internal/app/features/qa"
	questionstore "github.com/huddlehq/huddle/internal/app/store/questions"
	"github.com/huddlehq/huddle/internal/domain/models"
	"github.com/huddlehq/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*qa.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return qa.NewHandler(questionstore.New(db), zap.NewNop()), db
}

func TestServeCreateQuestion(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeCreateQuestion(rec, testutil.JSONRequest(t, "POST", "/createquestion", map[string]any{
		"userId":   "user-1",
		"userName": "Ava Chen",
		"title":    "How do goroutine leaks happen?",
		"content":  "I keep seeing them in production.",
		"tags":     []string{"go"},
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success    bool   `json:"success"`
		QuestionID string `json:"questionId"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.Success || resp.QuestionID == "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestServeCreateQuestion_ShortTitle(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeCreateQuestion(rec, testutil.JSONRequest(t, "POST", "/createquestion", map[string]any{
		"userId": "user-1",
		"title":  " short?  ",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestServeGetQuestions_PaginationEnvelope(t *testing.T) {
	handler, db := newTestHandler(t)
	store := questionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 12; i++ {
		_, err := store.Create(ctx, models.Question{
			UserID: "user-1",
			Title:  fmt.Sprintf("question number %02d", i),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeGetQuestions(rec, httptest.NewRequest("GET", "/getquestions?page=2&limit=5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Success    bool  `json:"success"`
		Questions  []any `json:"questions"`
		Pagination struct {
			CurrentPage  int `json:"currentPage"`
			TotalPages   int `json:"totalPages"`
			TotalItems   int `json:"totalItems"`
			ItemsPerPage int `json:"itemsPerPage"`
		} `json:"pagination"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Questions) != 5 {
		t.Errorf("expected 5 questions on page 2, got %d", len(resp.Questions))
	}
	p := resp.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 3 || p.TotalItems != 12 || p.ItemsPerPage != 5 {
		t.Errorf("unexpected pagination %+v", p)
	}
}

func TestServeGetQuestions_DefensiveDefaults(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// An old record missing most fields.
	fix.RawQuestion(ctx, map[string]any{
		"userId": "user-1",
		"answers": []map[string]any{
			{"answerId": "a-1", "content": "bare answer"},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeGetQuestions(rec, httptest.NewRequest("GET", "/getquestions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Questions []struct {
			UserName string   `json:"userName"`
			Title    string   `json:"title"`
			Tags     []string `json:"tags"`
			Answers  []struct {
				UserName  string `json:"userName"`
				Votes     int    `json:"votes"`
				Accepted  bool   `json:"accepted"`
				CreatedAt string `json:"createdAt"`
			} `json:"answers"`
		} `json:"questions"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(resp.Questions))
	}
	q := resp.Questions[0]
	if q.UserName != "Anonymous" || q.Title != "Untitled Question" {
		t.Errorf("question defaults not applied: %+v", q)
	}
	if q.Tags == nil {
		t.Error("expected tags as an empty array, not null")
	}
	if len(q.Answers) != 1 {
		t.Fatalf("expected the answer back, got %d", len(q.Answers))
	}
	a := q.Answers[0]
	if a.UserName != "Anonymous" || a.Votes != 0 || a.Accepted || a.CreatedAt == "" {
		t.Errorf("answer defaults not applied: %+v", a)
	}
}

func TestServeAddAnswer(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	store := questionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := fix.CreateQuestion(ctx, "user-1", "needs an answer")

	rec := httptest.NewRecorder()
	handler.ServeAddAnswer(rec, testutil.JSONRequest(t, "POST", "/addanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"userId":     "user-2",
		"content":    "Use context cancellation.",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(got.Answers))
	}
	a := got.Answers[0]
	if a.AnswerID == "" {
		t.Error("expected a generated answer id")
	}
	if a.Votes != 0 || a.Accepted {
		t.Errorf("expected a fresh unaccepted answer, got %+v", a)
	}
}

func TestServeAddAnswer_TooShort(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := fix.CreateQuestion(ctx, "user-1", "needs an answer")

	rec := httptest.NewRecorder()
	handler.ServeAddAnswer(rec, testutil.JSONRequest(t, "POST", "/addanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"userId":     "user-2",
		"content":    "  ok  ",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestServeAddAnswer_QuestionNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeAddAnswer(rec, testutil.JSONRequest(t, "POST", "/addanswer", map[string]any{
		"questionId": "64f000000000000000000000",
		"userId":     "user-2",
		"content":    "Answering the void.",
	}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestServeVoteQuestion(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	store := questionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := fix.CreateQuestion(ctx, "user-1", "worth voting on")

	for _, voteType := range []string{"up", "up", "down"} {
		rec := httptest.NewRecorder()
		handler.ServeVoteQuestion(rec, testutil.JSONRequest(t, "POST", "/votequestion", map[string]any{
			"questionId": q.ID.Hex(),
			"voteType":   voteType,
		}))
		if rec.Code != http.StatusOK {
			t.Fatalf("vote %q: expected status 200, got %d", voteType, rec.Code)
		}
	}

	got, err := store.GetByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Votes != 1 {
		t.Errorf("expected net 1 vote, got %d", got.Votes)
	}
}

func TestServeAcceptAnswer_AuthorOnly(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fix.Answer("user-2", "the answer")
	q := fix.CreateQuestion(ctx, "author-1", "whose call is it?", a)

	// Someone other than the author.
	rec := httptest.NewRecorder()
	handler.ServeAcceptAnswer(rec, testutil.JSONRequest(t, "POST", "/acceptanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"answerId":   a.AnswerID,
		"userId":     "user-2",
	}))
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for a non-author, got %d", rec.Code)
	}

	// The author.
	rec = httptest.NewRecorder()
	handler.ServeAcceptAnswer(rec, testutil.JSONRequest(t, "POST", "/acceptanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"answerId":   a.AnswerID,
		"userId":     "author-1",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for the author, got %d: %s", rec.Code, rec.Body.String())
	}

	store := questionstore.New(db)
	got, err := store.GetByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Answers[0].Accepted {
		t.Error("expected the answer accepted")
	}
}

func TestServeAcceptAnswer_AnswerNotFound(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := fix.CreateQuestion(ctx, "author-1", "no such answer here", fix.Answer("user-2", "real"))

	rec := httptest.NewRecorder()
	handler.ServeAcceptAnswer(rec, testutil.JSONRequest(t, "POST", "/acceptanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"answerId":   "missing",
		"userId":     "author-1",
	}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestServeVoteAnswer_BadVoteType(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeVoteAnswer(rec, testutil.JSONRequest(t, "POST", "/voteanswer", map[string]any{
		"questionId": "64f000000000000000000000",
		"answerId":   "a-1",
		"voteType":   "sideways",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestServeVoteAnswer(t *testing.T) {
	handler, db := newTestHandler(t)
	fix := testutil.NewFixtures(t, db)
	store := questionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fix.Answer("user-2", "vote me")
	q := fix.CreateQuestion(ctx, "user-1", "answer vote wiring", a)

	rec := httptest.NewRecorder()
	handler.ServeVoteAnswer(rec, testutil.JSONRequest(t, "POST", "/voteanswer", map[string]any{
		"questionId": q.ID.Hex(),
		"answerId":   a.AnswerID,
		"voteType":   "up",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Answers[0].Votes != 1 {
		t.Errorf("expected 1 vote on the answer, got %d", got.Answers[0].Votes)
	}
}
