// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/eventhub/internal/app/features/dashboard"
	"github.com/dalemusser/eventhub/internal/app/resources"
	"github.com/dalemusser/eventhub/internal/app/store/fixtures"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/app/system/viewdata"
	"github.com/dalemusser/eventhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// runtime holds app-wide objects created in Startup and torn down in Shutdown.
type runtime struct {
	views   *dashboard.Registry
	cleanup *workers.ViewCleanup
}

var rt runtime

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	timeouts.Configure(timeouts.Config{
		Ping:   timeouts.DefaultPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})

	rt.views = dashboard.NewRegistry(fixtures.Dashboard, appCfg.LoadingDelay, logger)
	rt.cleanup = workers.NewViewCleanup(rt.views, logger, appCfg.ViewCleanupInterval, appCfg.ViewIdleTimeout)
	rt.cleanup.Start()

	logger.Info("eventhub started",
		zap.String("event_store", deps.EventsKind),
		zap.Duration("loading_delay", appCfg.LoadingDelay))
	return nil
}
