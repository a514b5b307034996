// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to The Huddle lives: the two
// MongoDB databases (social data and the chat log are kept separate so
// the chat collection can be archived independently), the session cookie
// settings, and the static asset directory.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	NetworkDatabase  string // Database holding users, groups, posts, questions, discussions
	ChatDatabase     string // Database holding the flat chat log
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: huddle-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Static asset configuration
	StaticDir string // Directory served at /static (default: web)
}
