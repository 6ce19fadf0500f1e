// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EventHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: event_store, session_name, etc.
//   - Environment variables: EVENTHUB_EVENT_STORE, EVENTHUB_SESSION_NAME, etc.
//   - Command-line flags: --event_store, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in page titles"},

	// Event store
	{Name: "event_store", Default: eventstore.KindMemory, Desc: "Event store backend: 'memory' or 'sqlite'"},
	{Name: "sqlite_dsn", Default: "file:eventhub?mode=memory&cache=shared", Desc: "SQLite DSN for the sqlite event store"},

	// Dashboard views
	{Name: "loading_delay", Default: "1s", Desc: "Loading phase for a new dashboard view (0 disables it)"},
	{Name: "view_idle_timeout", Default: "30m", Desc: "Idle time after which a dashboard view is torn down"},
	{Name: "view_cleanup_interval", Default: "1m", Desc: "How often idle dashboard views are swept"},

	// View session cookie
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "eventhub-view", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Audit logging settings
	{Name: "audit_log_admin", Default: "log", Desc: "Admin event logging: 'log' or 'off'"},

	// Timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single reads and deletes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list queries and schema setup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, EVENTHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EVENTHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName: appValues.String("site_name"),

		EventStore: appValues.String("event_store"),
		SQLiteDSN:  appValues.String("sqlite_dsn"),

		LoadingDelay:        appValues.Duration("loading_delay", time.Second),
		ViewIdleTimeout:     appValues.Duration("view_idle_timeout", 30*time.Minute),
		ViewCleanupInterval: appValues.Duration("view_cleanup_interval", time.Minute),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuditLogAdmin: appValues.String("audit_log_admin"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.EventStore {
	case eventstore.KindMemory:
	case eventstore.KindSQLite:
		if appCfg.SQLiteDSN == "" {
			return fmt.Errorf("event_store %q requires sqlite_dsn", appCfg.EventStore)
		}
	default:
		logger.Error("invalid event store", zap.String("event_store", appCfg.EventStore))
		return fmt.Errorf("unknown event_store %q (want %q or %q)",
			appCfg.EventStore, eventstore.KindMemory, eventstore.KindSQLite)
	}

	if appCfg.LoadingDelay < 0 {
		return fmt.Errorf("loading_delay must not be negative, got %s", appCfg.LoadingDelay)
	}
	if appCfg.ViewIdleTimeout <= 0 {
		return fmt.Errorf("view_idle_timeout must be positive, got %s", appCfg.ViewIdleTimeout)
	}
	if appCfg.ViewCleanupInterval <= 0 {
		return fmt.Errorf("view_cleanup_interval must be positive, got %s", appCfg.ViewCleanupInterval)
	}
	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key is empty; provide ≥32 random chars")
	}

	switch appCfg.AuditLogAdmin {
	case "log", "off":
	default:
		return fmt.Errorf("audit_log_admin must be 'log' or 'off', got %q", appCfg.AuditLogAdmin)
	}

	return nil
}
