// internal/app/system/workers/viewcleanup.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Evictor removes views that have been idle since before a cutoff and
// reports how many it removed.
type Evictor interface {
	EvictIdle(cutoff time.Time) int
}

// ViewCleanup is a background worker that tears down idle dashboard views.
type ViewCleanup struct {
	views       Evictor
	log         *zap.Logger
	interval    time.Duration
	idleTimeout time.Duration
	now         func() time.Time
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

// NewViewCleanup creates a new view cleanup worker.
//
// Parameters:
//   - views: the registry holding live views
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
//   - idleTimeout: how long a view must be unused before it is closed (e.g., 30 minutes)
func NewViewCleanup(views Evictor, logger *zap.Logger, interval, idleTimeout time.Duration) *ViewCleanup {
	return &ViewCleanup{
		views:       views,
		log:         logger,
		interval:    interval,
		idleTimeout: idleTimeout,
		now:         time.Now,
		stopCh:      make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (w *ViewCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("view cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_timeout", w.idleTimeout))
}

// Stop signals the worker to stop and waits for it to finish.
// Calling Stop more than once is safe.
func (w *ViewCleanup) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("view cleanup worker stopped")
	})
}

func (w *ViewCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep runs one cleanup pass and returns the number of views closed.
func (w *ViewCleanup) Sweep() int {
	count := w.views.EvictIdle(w.now().Add(-w.idleTimeout))
	if count > 0 {
		w.log.Info("closed idle dashboard views", zap.Int("count", count))
	}
	return count
}
