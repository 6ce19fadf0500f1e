// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	Events     eventstore.Store
	EventsKind string

	// SQLite is set only when the sqlite backend is selected.
	SQLite *eventstore.SQLiteStore
}
