// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/store/fixtures"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB opens the configured event store.
//
// The memory backend is seeded here. The sqlite backend is seeded in
// EnsureSchema once its table exists.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	switch appCfg.EventStore {
	case eventstore.KindSQLite:
		store, err := eventstore.OpenSQLite(appCfg.SQLiteDSN)
		if err != nil {
			return DBDeps{}, fmt.Errorf("open sqlite event store: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return DBDeps{}, fmt.Errorf("ping sqlite event store: %w", err)
		}
		logger.Info("connected to sqlite event store")
		return DBDeps{Events: store, EventsKind: eventstore.KindSQLite, SQLite: store}, nil

	default:
		store := eventstore.NewMemory(fixtures.EventRefs())
		logger.Info("using in-memory event store")
		return DBDeps{Events: store, EventsKind: eventstore.KindMemory}, nil
	}
}

// EnsureSchema creates the sqlite events table and seeds it when empty.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.SQLite == nil {
		return nil
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), logger, "ensure schema")
	defer cancel()

	if err := deps.SQLite.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate events table: %w", err)
	}
	n, err := deps.SQLite.Seed(ctx, fixtures.EventRefs())
	if err != nil {
		return fmt.Errorf("seed events table: %w", err)
	}
	if n > 0 {
		logger.Info("seeded events table", zap.Int("rows", n))
	}
	return nil
}
