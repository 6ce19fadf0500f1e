// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging, CORS and request body limits. AppConfig is passed to most
// lifecycle hooks, so anything needed during startup, request handling,
// or shutdown lives here.
type AppConfig struct {
	SiteName string // Display name in the page title

	// Event store configuration
	EventStore string // "memory" or "sqlite"
	SQLiteDSN  string // modernc sqlite DSN (only used if EventStore is "sqlite")

	// Dashboard view configuration
	LoadingDelay        time.Duration // One-shot loading phase for a new view; 0 disables it
	ViewIdleTimeout     time.Duration // Views unused this long are torn down
	ViewCleanupInterval time.Duration // How often the cleanup worker sweeps

	// View session cookie configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name (default: eventhub-view)
	SessionDomain string // Cookie domain (blank means current host)

	// Audit logging
	AuditLogAdmin string // "log" or "off"

	// Request-scoped timeouts
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
