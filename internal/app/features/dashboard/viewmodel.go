// internal/app/features/dashboard/viewmodel.go
package dashboard

import (
	"sync"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/charts"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

// ViewModel is the state behind one dashboard view: the seeded entities,
// the loading flag and the active section.
//
// A new ViewModel starts in the loading state. Activate arms a one-shot
// timer that clears it after the loading delay; Close stops the timer, and
// a timer that fires after Close changes nothing.
type ViewModel struct {
	mu sync.Mutex

	data    models.Dashboard
	loading bool
	mode    models.ViewMode

	delay     time.Duration
	timer     *time.Timer
	activated bool
	closed    bool
	lastSeen  time.Time
	now       func() time.Time
}

// NewViewModel seeds a view with data. Nothing is scheduled until Activate.
func NewViewModel(data models.Dashboard, loadingDelay time.Duration) *ViewModel {
	return &ViewModel{
		data:     data.Clone(),
		loading:  true,
		mode:     models.DefaultViewMode,
		delay:    loadingDelay,
		lastSeen: time.Now(),
		now:      time.Now,
	}
}

// Activate starts the loading phase. Only the first call has an effect.
// A non-positive delay ends loading immediately.
func (vm *ViewModel) Activate() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.activated || vm.closed {
		return
	}
	vm.activated = true

	if vm.delay <= 0 {
		vm.loading = false
		return
	}
	vm.timer = time.AfterFunc(vm.delay, vm.finishLoading)
}

func (vm *ViewModel) finishLoading() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return
	}
	vm.loading = false
	vm.timer = nil
}

// Close tears the view down and discards a pending loading transition.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return
	}
	vm.closed = true
	if vm.timer != nil {
		vm.timer.Stop()
		vm.timer = nil
	}
}

// Closed reports whether Close has been called.
func (vm *ViewModel) Closed() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.closed
}

// SetViewMode replaces the active section and returns the previous one.
func (vm *ViewModel) SetViewMode(mode models.ViewMode) models.ViewMode {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	prev := vm.mode
	vm.mode = mode
	vm.lastSeen = vm.now()
	return prev
}

// Loading reports whether the view is still in its loading phase.
func (vm *ViewModel) Loading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

// ViewMode returns the active section.
func (vm *ViewModel) ViewMode() models.ViewMode {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.mode
}

// Touch records that the view was used.
func (vm *ViewModel) Touch() {
	vm.mu.Lock()
	vm.lastSeen = vm.now()
	vm.mu.Unlock()
}

// LastSeen returns when the view was last used.
func (vm *ViewModel) LastSeen() time.Time {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lastSeen
}

// Snapshot copies the current state for one render cycle.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return Snapshot{
		Data:     vm.data.Clone(),
		Loading:  vm.loading,
		ViewMode: vm.mode,
	}
}

// Snapshot is a read-only copy of a ViewModel.
type Snapshot struct {
	Data     models.Dashboard
	Loading  bool
	ViewMode models.ViewMode
}

// Sections says which dashboard sections render.
type Sections struct {
	Loading  bool
	Overview bool
	Events   bool
	Members  bool
	Revenue  bool
}

// Visible returns how many of the four sections render.
func (s Sections) Visible() int {
	n := 0
	for _, v := range []bool{s.Overview, s.Events, s.Members, s.Revenue} {
		if v {
			n++
		}
	}
	return n
}

// Sections applies the rendering rule: while loading nothing but the
// loading indicator shows; otherwise exactly the active section shows.
func (s Snapshot) Sections() Sections {
	if s.Loading {
		return Sections{Loading: true}
	}
	return Sections{
		Overview: s.ViewMode == models.ViewOverview,
		Events:   s.ViewMode == models.ViewEvents,
		Members:  s.ViewMode == models.ViewMembers,
		Revenue:  s.ViewMode == models.ViewRevenue,
	}
}

// RegistrationSeries is the registrations line chart.
func (s Snapshot) RegistrationSeries() charts.LineChart {
	return charts.Registrations(s.Data.Trends)
}

// RevenueSeries is the revenue line chart with display values in rupees.
func (s Snapshot) RevenueSeries() charts.RevenueChart {
	return charts.Revenue(s.Data.Trends)
}

// MembershipSeries is the membership doughnut chart.
func (s Snapshot) MembershipSeries() charts.DoughnutChart {
	return charts.MembershipDoughnut(s.Data.Membership)
}
