// internal/app/features/qa/handler.go
package qa

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/google/uuid"
	"github.com/huddlehq/huddle/internal/app/policy/qapolicy"
	questionstore "github.com/huddlehq/huddle/internal/app/store/questions"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/paging"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MinTitleLen is the shortest accepted question title, after trimming.
const MinTitleLen = 10

// MinAnswerLen is the shortest accepted answer body, after trimming.
const MinAnswerLen = 5

// Handler serves the Q&A board endpoints.
type Handler struct {
	Questions *questionstore.Store
	Log       *zap.Logger
}

func NewHandler(questions *questionstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Questions: questions, Log: logger}
}

type createQuestionRequest struct {
	UserID    string   `json:"userId"`
	UserName  string   `json:"userName"`
	UserPhoto string   `json:"userPhoto"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
}

// ServeCreateQuestion handles POST /createquestion.
func (h *Handler) ServeCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if len(title) < MinTitleLen {
		httpjson.Fail(w, http.StatusBadRequest, "Question title must be at least 10 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q, err := h.Questions.Create(ctx, models.Question{
		UserID:    req.UserID,
		UserName:  sanitize.Text(req.UserName),
		UserPhoto: req.UserPhoto,
		Title:     sanitize.Text(title),
		Content:   sanitize.Body(strings.TrimSpace(req.Content)),
		Tags:      sanitize.Slice(req.Tags),
	})
	if err != nil {
		h.Log.Error("createquestion: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	httpjson.OK(w, map[string]any{
		"success":    true,
		"message":    "Question posted successfully!",
		"questionId": q.ID.Hex(),
	})
}

// questionView is a listing entry with the legacy defaults applied.
type questionView struct {
	QuestionID string          `json:"questionId"`
	UserID     string          `json:"userId"`
	UserName   string          `json:"userName"`
	UserPhoto  string          `json:"userPhoto"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Tags       []string        `json:"tags"`
	Answers    []models.Answer `json:"answers"`
	Votes      int             `json:"votes"`
	Views      int             `json:"views"`
	CreatedAt  string          `json:"createdAt"`
}

func newQuestionView(q models.Question, now time.Time) questionView {
	userName := q.UserName
	if userName == "" {
		userName = "Anonymous"
	}
	title := q.Title
	if title == "" {
		title = "Untitled Question"
	}
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	return questionView{
		QuestionID: q.ID.Hex(),
		UserID:     q.UserID,
		UserName:   userName,
		UserPhoto:  q.UserPhoto,
		Title:      title,
		Content:    q.Content,
		Tags:       tags,
		Answers:    q.NormalizedAnswers(now),
		Votes:      q.Votes,
		Views:      q.Views,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
	}
}

// ServeGetQuestions handles GET /getquestions with filter, search, and
// pagination query parameters.
func (h *Handler) ServeGetQuestions(w http.ResponseWriter, r *http.Request) {
	filter := strings.ToLower(query.Get(r, "filter"))
	if filter == "" {
		filter = questionstore.FilterAll
	}
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	questions, total, err := h.Questions.List(ctx, questionstore.ListOptions{
		Filter: filter,
		Search: query.Get(r, "search"),
		Skip:   page.Skip(),
		Limit:  int64(page.Limit),
	})
	if err != nil {
		h.Log.Error("getquestions: list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load questions")
		return
	}

	now := time.Now().UTC()
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, newQuestionView(q, now))
	}

	httpjson.OK(w, map[string]any{
		"success":   true,
		"questions": views,
		"pagination": map[string]any{
			"currentPage":  page.Page,
			"totalPages":   page.TotalPages(total),
			"totalItems":   total,
			"itemsPerPage": page.Limit,
		},
	})
}

type addAnswerRequest struct {
	QuestionID string `json:"questionId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserPhoto  string `json:"userPhoto"`
	Content    string `json:"content"`
}

// ServeAddAnswer handles POST /addanswer.
func (h *Handler) ServeAddAnswer(w http.ResponseWriter, r *http.Request) {
	var req addAnswerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.QuestionID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Question ID required")
		return
	}
	content := strings.TrimSpace(req.Content)
	if len(content) < MinAnswerLen {
		httpjson.Fail(w, http.StatusBadRequest, "Answer must be at least 5 characters")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}

	userName := sanitize.Text(req.UserName)
	if userName == "" {
		userName = "Anonymous"
	}
	answer := models.Answer{
		AnswerID:  uuid.NewString(),
		UserID:    req.UserID,
		UserName:  userName,
		UserPhoto: req.UserPhoto,
		Content:   sanitize.Body(content),
		Votes:     0,
		Accepted:  false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Questions.AddAnswer(ctx, oid, answer)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		h.Log.Error("addanswer: update failed", zap.Error(err), zap.String("question_id", req.QuestionID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to add answer")
		return
	}

	httpjson.OK(w, map[string]any{"success": true, "message": "Answer posted!"})
}

type voteQuestionRequest struct {
	QuestionID string `json:"questionId"`
	VoteType   string `json:"voteType"`
}

// ServeVoteQuestion handles POST /votequestion. Any vote type other than
// "up" counts down, matching the behavior clients already rely on.
func (h *Handler) ServeVoteQuestion(w http.ResponseWriter, r *http.Request) {
	var req voteQuestionRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.QuestionID == "" || req.VoteType == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Question ID and vote type required")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}

	delta := -1
	if req.VoteType == "up" {
		delta = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Questions.Vote(ctx, oid, delta)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		h.Log.Error("votequestion: update failed", zap.Error(err), zap.String("question_id", req.QuestionID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to vote")
		return
	}

	httpjson.OK(w, map[string]any{"success": true})
}

type acceptAnswerRequest struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
	UserID     string `json:"userId"`
}

// ServeAcceptAnswer handles POST /acceptanswer. Only the question author
// may accept.
func (h *Handler) ServeAcceptAnswer(w http.ResponseWriter, r *http.Request) {
	var req acceptAnswerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.QuestionID == "" || req.AnswerID == "" || req.UserID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Question ID, Answer ID, and User ID required")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q, err := h.Questions.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		h.Log.Error("acceptanswer: lookup failed", zap.Error(err), zap.String("question_id", req.QuestionID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to accept answer")
		return
	}
	if !qapolicy.CanAcceptAnswer(q, req.UserID) {
		httpjson.Fail(w, http.StatusForbidden, "Unauthorized: You can only accept answers for your questions")
		return
	}

	err = h.Questions.AcceptAnswer(ctx, oid, req.AnswerID)
	if err == questionstore.ErrAnswerNotFound {
		httpjson.Fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		h.Log.Error("acceptanswer: update failed", zap.Error(err), zap.String("question_id", req.QuestionID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to accept answer")
		return
	}

	httpjson.OK(w, map[string]any{"success": true, "message": "Answer accepted!"})
}

type voteAnswerRequest struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
	VoteType   string `json:"voteType"`
}

// ServeVoteAnswer handles POST /voteanswer. Unlike question votes, the
// vote type is validated strictly.
func (h *Handler) ServeVoteAnswer(w http.ResponseWriter, r *http.Request) {
	var req voteAnswerRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.QuestionID == "" || req.AnswerID == "" || req.VoteType == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Question ID, Answer ID, and vote type required")
		return
	}
	if req.VoteType != "up" && req.VoteType != "down" {
		httpjson.Fail(w, http.StatusBadRequest, "Vote type must be 'up' or 'down'")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Answer not found")
		return
	}

	delta := -1
	if req.VoteType == "up" {
		delta = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Questions.VoteAnswer(ctx, oid, req.AnswerID, delta)
	if err == questionstore.ErrAnswerNotFound {
		httpjson.Fail(w, http.StatusNotFound, "Answer not found")
		return
	}
	if err != nil {
		h.Log.Error("voteanswer: update failed", zap.Error(err),
			zap.String("question_id", req.QuestionID), zap.String("answer_id", req.AnswerID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to vote on answer")
		return
	}

	httpjson.OK(w, map[string]any{"success": true, "message": "Answer " + req.VoteType + "voted!"})
}
