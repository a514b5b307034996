// internal/app/features/notifications/handler.go
package notifications

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/notify"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the derived notification feed. Nothing is stored: every
// request synthesizes the list from current group membership.
type Handler struct {
	Groups *groupstore.Store
	Log    *zap.Logger
}

func NewHandler(groups *groupstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Groups: groups, Log: logger}
}

// ServeGetNotifications handles GET /getnotifications.
func (h *Handler) ServeGetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := query.Get(r, "userId")
	if userID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.ListByMember(ctx, userID)
	if err != nil {
		h.Log.Error("getnotifications: group lookup failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load notifications")
		return
	}

	httpjson.OK(w, map[string]any{
		"success":       true,
		"notifications": notify.ForUser(userID, groups, time.Now()),
	})
}
