// internal/app/store/events/store.go
package eventstore

import (
	"context"
	"errors"

	"github.com/dalemusser/eventhub/internal/domain/models"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("event store closed")

// Store is the identifier-indexed event list behind the events API.
// Delete removes every entry with the given id and reports how many went;
// removing nothing is not an error.
type Store interface {
	List(ctx context.Context) ([]models.EventRef, error)
	Delete(ctx context.Context, id string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// Kind names a Store implementation in config.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)
