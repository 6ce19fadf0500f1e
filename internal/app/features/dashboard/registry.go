// internal/app/features/dashboard/registry.go
package dashboard

import (
	"sync"
	"time"

	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

// SeedFunc returns fresh seed data for a new view.
type SeedFunc func() models.Dashboard

// Registry holds one ViewModel per view-session id.
type Registry struct {
	mu    sync.Mutex
	views map[string]*ViewModel
	seed  SeedFunc
	delay time.Duration
	log   *zap.Logger
}

// NewRegistry creates an empty registry. Views it creates are seeded by
// seed and use loadingDelay for their loading phase.
func NewRegistry(seed SeedFunc, loadingDelay time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		views: make(map[string]*ViewModel),
		seed:  seed,
		delay: loadingDelay,
		log:   logger,
	}
}

// Get returns the view for id, creating and activating it on first use.
// The second result is true when the view was created by this call.
func (reg *Registry) Get(id string) (*ViewModel, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if vm, ok := reg.views[id]; ok && !vm.Closed() {
		vm.Touch()
		return vm, false
	}

	vm := NewViewModel(reg.seed(), reg.delay)
	vm.Activate()
	reg.views[id] = vm
	reg.log.Debug("dashboard view created", zap.String("view_id", id))
	return vm, true
}

// Lookup returns the view for id without creating one.
func (reg *Registry) Lookup(id string) (*ViewModel, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	vm, ok := reg.views[id]
	return vm, ok
}

// Len returns the number of live views.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.views)
}

// EvictIdle closes and removes views unused since before cutoff.
func (reg *Registry) EvictIdle(cutoff time.Time) int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	n := 0
	for id, vm := range reg.views {
		if vm.LastSeen().Before(cutoff) {
			vm.Close()
			delete(reg.views, id)
			n++
		}
	}
	return n
}

// CloseAll tears down every view.
func (reg *Registry) CloseAll() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for id, vm := range reg.views {
		vm.Close()
		delete(reg.views, id)
	}
}
