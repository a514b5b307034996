// internal/app/features/accounts/handler.go
package accounts

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	userstore "github.com/huddlehq/huddle/internal/app/store/users"
	"github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/authutil"
	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/sanitize"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves account signup, login, session, and profile endpoints.
type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Users: users, SessionMgr: sm, Log: logger}
}

type signupRequest struct {
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	FullName     string   `json:"fullName"`
	University   string   `json:"university"`
	Branch       string   `json:"branch"`
	AcademicYear string   `json:"academicYear"`
	Skills       []string `json:"skills"`
}

// ServeSignup handles POST /signup.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" ||
		req.University == "" || req.Branch == "" || req.AcademicYear == "" {
		httpjson.Fail(w, http.StatusBadRequest, "All fields except skills are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The unique index is the real guard; this check just gives a clean
	// 409 instead of surfacing a write error in the common case.
	exists, err := h.Users.EmailExists(ctx, req.Email)
	if err != nil {
		h.Log.Error("signup: email lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create account")
		return
	}
	if exists {
		httpjson.Fail(w, http.StatusConflict, "User already exists")
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("signup: password hashing failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user, err := h.Users.Create(ctx, models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     sanitize.Text(req.FullName),
		University:   sanitize.Text(req.University),
		Branch:       sanitize.Text(req.Branch),
		AcademicYear: sanitize.Text(req.AcademicYear),
		Skills:       sanitize.Slice(req.Skills),
	})
	if err == userstore.ErrDuplicateEmail {
		httpjson.Fail(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		h.Log.Error("signup: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	h.signIn(w, r, user)
	h.Log.Info("user created", zap.String("email", user.Email), zap.String("user_id", user.ID.Hex()))

	httpjson.OK(w, map[string]any{
		"success": true,
		"message": "Account created successfully!",
		"user":    user.ToProfile(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeLogin handles POST /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Fail(w, http.StatusBadRequest, "Email and password required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Log.Error("login: lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if !authutil.CheckPassword(user.PasswordHash, req.Password) {
		httpjson.Fail(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	h.signIn(w, r, *user)
	h.Log.Info("user logged in", zap.String("email", user.Email))

	httpjson.OK(w, map[string]any{
		"success": true,
		"user":    user.ToProfile(),
	})
}

// ServeLogout handles POST /logout. Always succeeds, signed in or not.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("logout: failed to clear session", zap.Error(err))
	}
	httpjson.OK(w, map[string]any{"success": true})
}

// ServeMe handles GET /me, reporting who the session cookie says we are.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.OK(w, map[string]any{"isAuthenticated": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByAnyID(ctx, su.ID)
	if err == mongo.ErrNoDocuments {
		// A session for a deleted account is treated as signed out.
		httpjson.OK(w, map[string]any{"isAuthenticated": false})
		return
	}
	if err != nil {
		h.Log.Error("me: lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to load session user")
		return
	}

	httpjson.OK(w, map[string]any{
		"isAuthenticated": true,
		"user":            user.ToProfile(),
	})
}

type updateProfileRequest struct {
	UserID          string    `json:"userId"`
	FullName        *string   `json:"fullName"`
	Bio             *string   `json:"bio"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl"`
	CoverPhotoURL   *string   `json:"coverPhotoUrl"`
	Skills          *[]string `json:"skills"`
}

// ServeUpdateProfile handles POST /updateprofile. Only the recognized
// fields are applied; anything else in the body is ignored.
func (h *Handler) ServeUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserID == "" {
		httpjson.Fail(w, http.StatusBadRequest, "User ID required")
		return
	}
	oid, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	upd := userstore.ProfileUpdate{}
	if req.FullName != nil {
		v := sanitize.Text(*req.FullName)
		upd.FullName = &v
	}
	if req.Bio != nil {
		v := sanitize.Text(*req.Bio)
		upd.Bio = &v
	}
	if req.ProfilePhotoURL != nil {
		v := strings.TrimSpace(*req.ProfilePhotoURL)
		upd.ProfilePhotoURL = &v
	}
	if req.CoverPhotoURL != nil {
		v := strings.TrimSpace(*req.CoverPhotoURL)
		upd.CoverPhotoURL = &v
	}
	if req.Skills != nil {
		upd.Skills = sanitize.Slice(*req.Skills)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Users.UpdateProfile(ctx, oid, upd)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Log.Error("updateprofile: update failed", zap.Error(err), zap.String("user_id", req.UserID))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to update")
		return
	}

	httpjson.OK(w, map[string]any{"success": true})
}

// ServeGetUser handles GET /getuser/{userID}.
func (h *Handler) ServeGetUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByAnyID(ctx, raw)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Log.Error("getuser: lookup failed", zap.Error(err), zap.String("user_id", raw))
		httpjson.Fail(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	httpjson.OK(w, map[string]any{
		"success": true,
		"user":    user.ToProfile(),
	})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, u models.User) {
	err := h.SessionMgr.SignIn(w, r, auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
	})
	if err != nil {
		// The session cookie is advisory; the response still carries the
		// profile, so a cookie failure is not fatal.
		h.Log.Warn("failed to set session cookie", zap.Error(err))
	}
}
