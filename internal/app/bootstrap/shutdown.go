// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the cleanup worker, tears down live dashboard views and
// closes the event store.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if rt.cleanup != nil {
		rt.cleanup.Stop()
	}
	if rt.views != nil {
		logger.Info("closing dashboard views", zap.Int("count", rt.views.Len()))
		rt.views.CloseAll()
	}

	if deps.Events != nil {
		logger.Info("closing event store", zap.String("store", deps.EventsKind))
		if err := deps.Events.Close(); err != nil {
			logger.Error("event store close failed", zap.Error(err))
			return err
		}
	}
	return nil
}
