// internal/app/features/posts/handler.go
package posts

import (
	"context"
	"net/http"

	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the campus feed endpoints.
type Handler struct {
	Posts *poststore.Store
	Log   *zap.Logger
}

func NewHandler(posts *poststore.Store, logger *zap.Logger) *Handler {
	return &Handler{Posts: posts, Log: logger}
}

type createPostRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
}

// ServeCreatePost handles POST /createpost.
func (h *Handler) ServeCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Posts.Create(ctx, models.Post{
		UserID:    req.UserID,
		UserName:  sanitize.Text(req.UserName),
		UserPhoto: req.UserPhoto,
		Content:   sanitize.Body(req.Content),
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		h.Log.Error("createpost: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Post created successfully!",
		"postId":  post.ID.Hex(),
	})
}

// ServeGetPosts handles GET /getposts: the newest feed page, passed
// through as stored.
func (h *Handler) ServeGetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.ListRecent(ctx)
	if err != nil {
		h.Log.Error("getposts: list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"posts":   posts,
	})
}
