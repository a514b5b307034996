// internal/app/features/chatlog/handler.go
package chatlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	chatstore "github.com/huddlehq/huddle/internal/app/store/chats"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the flat chat log, which lives in the separate chat
// database.
type Handler struct {
	Chats *chatstore.Store
	Log   *zap.Logger
}

func NewHandler(chats *chatstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Chats: chats, Log: logger}
}

type saveChatRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Room     string `json:"room"`
}

// ServeSaveChat handles POST /chat.
func (h *Handler) ServeSaveChat(w http.ResponseWriter, r *http.Request) {
	var req saveChatRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Username == "" || req.Message == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Username and message required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entry, err := h.Chats.Save(ctx, models.ChatEntry{
		Username: sanitize.Text(req.Username),
		Message:  sanitize.Body(req.Message),
		Room:     req.Room,
	})
	if err != nil {
		h.Log.Error("chat: save failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to save chat")
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"success": true,
		"chatId":  entry.ID.Hex(),
	})
}

// ServeGetChats handles GET /chats, newest first, optionally filtered by
// room.
func (h *Handler) ServeGetChats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Chats.ListRecent(ctx, query.Get(r, "room"))
	if err != nil {
		h.Log.Error("chats: list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to get chats")
		return
	}
	if entries == nil {
		entries = []models.ChatEntry{}
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"chats":   entries,
	})
}
