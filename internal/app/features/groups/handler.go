// internal/app/features/groups/handler.go
package groups

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/teamsize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the interest-group endpoints.
type Handler struct {
	Groups *groupstore.Store
	Log    *zap.Logger
}

func NewHandler(groups *groupstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Groups: groups, Log: logger}
}

// groupView is the annotated listing entry. Field names match what the
// deployed clients parse, mixed casing included.
type groupView struct {
	GroupID              string   `json:"groupId"`
	CreatorUserID        string   `json:"creatoruserid"`
	Members              []string `json:"members"`
	MemberCount          int      `json:"memberCount"`
	MaxMembers           *int     `json:"maxMembers"`
	IsFull               bool     `json:"isFull"`
	IsMember             bool     `json:"isMember"`
	PreferredTeamSize    string   `json:"preferredteamsize"`
	ProjectName          string   `json:"projectname"`
	DescriptionObjective string   `json:"descriptionobjective"`
	ProjectTimeline      string   `json:"projecttimeline"`
	RequiredSkills       []string `json:"requiredskills"`
	CreatedAt            string   `json:"createdAt"`
}

func newGroupView(g models.Group, requesterID string) groupView {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	skills := g.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	// The team size is free text; the first integer in it, when there is
	// one, becomes the advisory capacity.
	var maxMembers *int
	isFull := false
	if n, ok := teamsize.Parse(g.PreferredTeamSize); ok {
		maxMembers = &n
		isFull = len(members) >= n
	}

	projectName := strings.TrimSpace(g.ProjectName)
	if projectName == "" {
		projectName = "Unnamed Group"
	}

	return groupView{
		GroupID:              g.ID.Hex(),
		CreatorUserID:        g.CreatorUserID,
		Members:              members,
		MemberCount:          len(members),
		MaxMembers:           maxMembers,
		IsFull:               isFull,
		IsMember:             requesterID != "" && g.HasMember(requesterID),
		PreferredTeamSize:    g.PreferredTeamSize,
		ProjectName:          projectName,
		DescriptionObjective: g.DescriptionObjective,
		ProjectTimeline:      g.ProjectTimeline,
		RequiredSkills:       skills,
		CreatedAt:            g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ServeAvailableGroups handles GET|POST /getavailablegroups. The
// requesting user id rides in the query on GET and in the body on POST;
// it only affects the isMember annotation.
func (h *Handler) ServeAvailableGroups(w http.ResponseWriter, r *http.Request) {
	userID := query.Get(r, "userId")
	if r.Method == http.MethodPost {
		var body struct {
			UserID string `json:"userId"`
		}
		if err := httpjson.Decode(w, r, &body); err == nil && body.UserID != "" {
			userID = body.UserID
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.Log.Error("getavailablegroups: list failed", zap.Error(err))
		httpjson.FailDetails(w, http.StatusInternalServerError, "Could not load groups", err.Error())
		return
	}

	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, newGroupView(g, userID))
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"groups":  views,
	})
}

type createGroupRequest struct {
	CreatorUserID        string   `json:"creatoruserid"`
	ProjectName          string   `json:"project_name"`
	DescriptionObjective string   `json:"description_objective"`
	PreferredTeamSize    string   `json:"preferred_team_size"`
	RequiredSkills       []string `json:"required_skills"`
	ProjectTimeline      string   `json:"project_timeline"`
}

// ServeCreateGroup handles POST /creategroup.
func (h *Handler) ServeCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Project name required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Groups.Create(ctx, models.Group{
		CreatorUserID:        req.CreatorUserID,
		ProjectName:          sanitize.Text(req.ProjectName),
		DescriptionObjective: sanitize.Text(req.DescriptionObjective),
		PreferredTeamSize:    sanitize.Text(req.PreferredTeamSize),
		RequiredSkills:       sanitize.Slice(req.RequiredSkills),
		ProjectTimeline:      sanitize.Text(req.ProjectTimeline),
	})
	if err != nil {
		h.Log.Error("creategroup: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create group")
		return
	}

	h.Log.Info("group created",
		zap.String("project_name", group.ProjectName),
		zap.String("group_id", group.ID.Hex()))

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Group created successfully!",
		"groupId": group.ID.Hex(),
	})
}

type membershipRequest struct {
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}

// ServeJoinGroup handles POST /joingroup. Capacity is advisory: a join is
// never refused for fullness.
func (h *Handler) ServeJoinGroup(w http.ResponseWriter, r *http.Request) {
	h.serveMembershipChange(w, r, h.Groups.AddMember, "Joined successfully!")
}

// ServeLeaveGroup handles POST /leavegroup. Leaving a group you are not
// in succeeds as a no-op.
func (h *Handler) ServeLeaveGroup(w http.ResponseWriter, r *http.Request) {
	h.serveMembershipChange(w, r, h.Groups.RemoveMember, "Left group successfully!")
}

func (h *Handler) serveMembershipChange(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, primitive.ObjectID, string) error,
	message string,
) {
	var req membershipRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserID == "" || req.GroupID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID and Group ID required")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = apply(ctx, oid, req.UserID)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Group not found")
		return
	}
	if err != nil {
		h.Log.Error("group membership change failed", zap.Error(err),
			zap.String("group_id", req.GroupID), zap.String("user_id", req.UserID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to update group")
		return
	}

	httpjson.OK(w, map[string]any{"success": true, "message": message})
}

// myGroupView is the stripped-down projection for GET /getmygroups.
type myGroupView struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
}

// ServeMyGroups handles GET /getmygroups.
func (h *Handler) ServeMyGroups(w http.ResponseWriter, r *http.Request) {
	userID := query.Get(r, "userId")
	if userID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	refs, err := h.Groups.ListRefsByMember(ctx, userID)
	if err != nil {
		h.Log.Error("getmygroups: list failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, "Could not load user's groups")
		return
	}

	views := make([]myGroupView, 0, len(refs))
	for _, ref := range refs {
		name := ref.ProjectName
		if name == "" {
			name = "Unnamed Group"
		}
		views = append(views, myGroupView{GroupID: ref.ID.Hex(), GroupName: name})
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"groups":  views,
	})
}
