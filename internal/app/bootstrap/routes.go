// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"

	dashboardfeature "github.com/dalemusser/eventhub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/eventhub/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/eventhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/eventhub/internal/app/features/health"
	heartbeatfeature "github.com/dalemusser/eventhub/internal/app/features/heartbeat"
	"github.com/dalemusser/eventhub/internal/app/system/auditlog"
	"github.com/dalemusser/eventhub/internal/app/system/viewsession"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// EventHub boots the template engine, creates the view session manager,
// and mounts the admin dashboard, the admin events API, health and static
// assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if rt.views == nil {
		return nil, errors.New("dashboard registry not initialized; Startup must run first")
	}

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	viewSessions, err := viewsession.New(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("view session init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	audit := auditlog.New(logger, auditlog.Config{Admin: appCfg.AuditLogAdmin})

	r := chi.NewRouter()

	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Events, deps.EventsKind, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	})

	// Admin dashboard
	dashboardHandler := dashboardfeature.NewHandler(rt.views, viewSessions, audit, appCfg.LoadingDelay, logger)
	r.Mount("/admin", dashboardfeature.Routes(dashboardHandler))

	// Admin events API
	eventsHandler := eventsfeature.NewHandler(deps.Events, audit, logger)
	r.Mount("/api/admin/events", eventsfeature.Routes(eventsHandler))

	// Keeps an open dashboard tab from being swept as idle
	heartbeatHandler := heartbeatfeature.NewHandler(viewSessions, rt.views, logger)
	r.Mount("/api/heartbeat", heartbeatfeature.Routes(heartbeatHandler))

	return r, nil
}
