// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	accountsfeature "github.com/huddlehq/huddle/internal/app/features/accounts"
	apiinfofeature "github.com/huddlehq/huddle/internal/app/features/apiinfo"
	chatlogfeature "github.com/huddlehq/huddle/internal/app/features/chatlog"
	discussionsfeature "github.com/huddlehq/huddle/internal/app/features/discussions"
	frontendfeature "github.com/huddlehq/huddle/internal/app/features/frontend"
	groupsfeature "github.com/huddlehq/huddle/internal/app/features/groups"
	healthfeature "github.com/huddlehq/huddle/internal/app/features/health"
	notificationsfeature "github.com/huddlehq/huddle/internal/app/features/notifications"
	postsfeature "github.com/huddlehq/huddle/internal/app/features/posts"
	qafeature "github.com/huddlehq/huddle/internal/app/features/qa"
	chatstore "github.com/huddlehq/huddle/internal/app/store/chats"
	discussionstore "github.com/huddlehq/huddle/internal/app/store/discussions"
	groupstore "github.com/huddlehq/huddle/internal/app/store/groups"
	poststore "github.com/huddlehq/huddle/internal/app/store/posts"
	questionstore "github.com/huddlehq/huddle/internal/app/store/questions"
	userstore "github.com/huddlehq/huddle/internal/app/store/users"
	"github.com/huddlehq/huddle/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The Huddle's API is a flat route namespace: every endpoint registers
// directly on the root router because that is what the deployed clients
// call. Feature packages expose a Register function instead of a mounted
// sub-router so the flat layout stays in one place.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Stores over the two logical databases. Only the chat log lives in
	// ChatDB; everything else is social data in NetworkDB.
	users := userstore.New(deps.NetworkDB)
	groups := groupstore.New(deps.NetworkDB)
	posts := poststore.New(deps.NetworkDB)
	questions := questionstore.New(deps.NetworkDB)
	discussions := discussionstore.New(deps.NetworkDB)
	chats := chatstore.New(deps.ChatDB)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// The API itself trusts caller-supplied IDs for compatibility with the
	// deployed clients, so the session is advisory (used by /me).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Client, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	// API surface
	accountsfeature.Register(r, accountsfeature.NewHandler(users, sessionMgr, logger))
	groupsfeature.Register(r, groupsfeature.NewHandler(groups, logger))
	postsfeature.Register(r, postsfeature.NewHandler(posts, logger))
	qafeature.Register(r, qafeature.NewHandler(questions, logger))
	discussionsfeature.Register(r, discussionsfeature.NewHandler(discussions, groups, logger))
	chatlogfeature.Register(r, chatlogfeature.NewHandler(chats, logger))
	notificationsfeature.Register(r, notificationsfeature.NewHandler(groups, logger))
	apiinfofeature.Register(r, apiinfofeature.NewHandler())

	// Front-end pages: any path not claimed above falls through to the
	// static directory, with frontpage.html at the root.
	frontendfeature.Register(r, frontendfeature.NewHandler(appCfg.StaticDir, logger))

	return r, nil
}
