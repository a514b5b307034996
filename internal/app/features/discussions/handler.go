// internal/app/features/discussions/handler.go
package discussions

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/huddlehq/huddle/internal/app/policy/discussionpolicy"
	discussionstore "github.com/huddlehq/huddle/internal/app/store/discussions"
	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the per-group discussion rooms. Access is always checked
// against the owning group's live member list, not the room's participant
// snapshot, so leaving a group immediately revokes its rooms.
type Handler struct {
	Discussions *discussionstore.Store
	Groups      *groupstore.Store
	Log         *zap.Logger
}

func NewHandler(discussions *discussionstore.Store, groups *groupstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Discussions: discussions, Groups: groups, Log: logger}
}

// discussionView is the listing entry for GET /getdiscussions.
type discussionView struct {
	DiscussionID    string   `json:"discussionId"`
	RoomName        string   `json:"roomName"`
	Topic           string   `json:"topic"`
	Participants    []string `json:"participants"`
	LastMessage     string   `json:"lastMessage"`
	LastMessageTime string   `json:"lastMessageTime"`
	CreatedBy       string   `json:"createdBy"`
	CreatedByName   string   `json:"createdByName"`
	GroupID         string   `json:"groupId"`
	GroupName       string   `json:"groupName"`
	CreatedAt       string   `json:"createdAt"`
}

func newDiscussionView(d models.Discussion) discussionView {
	participants := d.Participants
	if participants == nil {
		participants = []string{}
	}
	return discussionView{
		DiscussionID:    d.ID.Hex(),
		RoomName:        d.RoomName,
		Topic:           d.Topic,
		Participants:    participants,
		LastMessage:     d.LastMessage,
		LastMessageTime: d.LastMessageTime.UTC().Format(time.RFC3339),
		CreatedBy:       d.CreatedBy,
		CreatedByName:   d.CreatedByName,
		GroupID:         d.GroupID,
		GroupName:       d.GroupName,
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ServeGetDiscussions handles GET /getdiscussions: the rooms of every
// group the user belongs to, most recent activity first.
func (h *Handler) ServeGetDiscussions(w http.ResponseWriter, r *http.Request) {
	userID := query.Get(r, "userId")
	if userID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	refs, err := h.Groups.ListRefsByMember(ctx, userID)
	if err != nil {
		h.Log.Error("getdiscussions: group lookup failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load discussions")
		return
	}
	groupIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		groupIDs = append(groupIDs, ref.ID.Hex())
	}

	discussions, err := h.Discussions.ListForGroups(ctx, groupIDs)
	if err != nil {
		h.Log.Error("getdiscussions: list failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load discussions")
		return
	}

	views := make([]discussionView, 0, len(discussions))
	for _, d := range discussions {
		views = append(views, newDiscussionView(d))
	}

	httpjson.OK(w, map[string]any{
		"success":     true,
		"discussions": views,
	})
}

type createDiscussionRequest struct {
	RoomName string `json:"roomName"`
	Topic    string `json:"topic"`
	GroupID  string `json:"groupId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// ServeCreateDiscussion handles POST /creatediscussion.
func (h *Handler) ServeCreateDiscussion(w http.ResponseWriter, r *http.Request) {
	var req createDiscussionRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.RoomName == "" || req.GroupID == "" || req.UserID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Room name, group ID, and user ID required")
		return
	}
	gid, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Groups.GetByID(ctx, gid)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Group not found")
		return
	}
	if err != nil {
		h.Log.Error("creatediscussion: group lookup failed", zap.Error(err), zap.String("group_id", req.GroupID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create discussion")
		return
	}
	if !group.HasMember(req.UserID) {
		httpjson.Fail(w, http.StatusForbidden, "You are not a member of this group")
		return
	}

	d, err := h.Discussions.Create(ctx, models.Discussion{
		GroupID:       req.GroupID,
		GroupName:     group.ProjectName,
		RoomName:      sanitize.Text(req.RoomName),
		Topic:         sanitize.Text(req.Topic),
		CreatedBy:     req.UserID,
		CreatedByName: sanitize.Text(req.UserName),
	})
	if err != nil {
		h.Log.Error("creatediscussion: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create discussion")
		return
	}

	h.Log.Info("discussion created",
		zap.String("room_name", d.RoomName),
		zap.String("discussion_id", d.ID.Hex()))

	httpjson.OK(w, map[string]any{
		"success":      true,
		"message":      "Discussion created!",
		"discussionId": d.ID.Hex(),
	})
}

// ServeGetMessages handles GET /getmessages/{discussionID}.
func (h *Handler) ServeGetMessages(w http.ResponseWriter, r *http.Request) {
	userID := query.Get(r, "userId")
	if userID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, ok := h.loadGated(ctx, w, chi.URLParam(r, "discussionID"), userID)
	if !ok {
		return
	}

	messages := d.Messages
	if messages == nil {
		messages = []models.Message{}
	}

	httpjson.OK(w, map[string]any{
		"success":   true,
		"messages":  messages,
		"roomName":  d.RoomName,
		"topic":     d.Topic,
		"groupName": d.GroupName,
	})
}

type sendMessageRequest struct {
	DiscussionID string `json:"discussionId"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	UserPhoto    string `json:"userPhoto"`
	Content      string `json:"content"`
}

// ServeSendMessage handles POST /sendmessage.
func (h *Handler) ServeSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.DiscussionID == "" || req.UserID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Discussion ID and User ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	d, ok := h.loadGated(ctx, w, req.DiscussionID, req.UserID)
	if !ok {
		return
	}

	now := time.Now().UTC()
	msg := models.Message{
		MessageID: uuid.NewString(),
		UserID:    req.UserID,
		UserName:  sanitize.Text(req.UserName),
		UserPhoto: req.UserPhoto,
		Content:   sanitize.Body(req.Content),
		Timestamp: now.Format(time.RFC3339),
	}

	err := h.Discussions.AppendMessage(ctx, d.ID, msg, now)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Discussion not found")
		return
	}
	if err != nil {
		h.Log.Error("sendmessage: append failed", zap.Error(err), zap.String("discussion_id", req.DiscussionID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	httpjson.OK(w, map[string]any{"success": true})
}

// loadGated fetches the discussion and enforces the live-membership gate.
// On failure it writes the error response and reports false. Discussions
// without an owning group (older records) are open to any caller.
func (h *Handler) loadGated(ctx context.Context, w http.ResponseWriter, rawID, userID string) (models.Discussion, bool) {
	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Discussion not found")
		return models.Discussion{}, false
	}

	d, err := h.Discussions.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Discussion not found")
		return models.Discussion{}, false
	}
	if err != nil {
		h.Log.Error("discussion lookup failed", zap.Error(err), zap.String("discussion_id", rawID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to load discussion")
		return models.Discussion{}, false
	}

	if d.GroupID != "" {
		gid, err := primitive.ObjectIDFromHex(d.GroupID)
		if err != nil {
			httpjson.Fail(w, http.StatusForbidden, "Group not found")
			return models.Discussion{}, false
		}
		group, err := h.Groups.GetByID(ctx, gid)
		if err == mongo.ErrNoDocuments {
			httpjson.Fail(w, http.StatusForbidden, "Group not found")
			return models.Discussion{}, false
		}
		if err != nil {
			h.Log.Error("discussion group lookup failed", zap.Error(err), zap.String("group_id", d.GroupID))
			httpjson.Fail(w, http.StatusInternalServerError, "Failed to load discussion")
			return models.Discussion{}, false
		}
		if !discussionpolicy.CanParticipate(&group, userID) {
			httpjson.Fail(w, http.StatusForbidden, "Access denied")
			return models.Discussion{}, false
		}
	}

	return d, true
}
