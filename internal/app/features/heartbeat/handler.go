// internal/app/features/heartbeat/handler.go
package heartbeat

import (
	"net/http"

	"github.com/dalemusser/eventhub/internal/app/features/dashboard"
	"go.uber.org/zap"
)

// ViewLookup reads the view id on a request without minting one.
type ViewLookup interface {
	Peek(r *http.Request) (string, bool)
}

// Handler keeps an open dashboard view from being swept as idle.
type Handler struct {
	Sessions ViewLookup
	Views    *dashboard.Registry
	Log      *zap.Logger
}

// NewHandler creates a new heartbeat handler.
func NewHandler(sessions ViewLookup, views *dashboard.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Views:    views,
		Log:      logger,
	}
}

// ServeHeartbeat handles POST /api/heartbeat.
// Marks the caller's dashboard view as used. A request without a view,
// or for a view that was already swept, is answered with 200 and ignored;
// the next GET /admin creates a fresh view.
func (h *Handler) ServeHeartbeat(w http.ResponseWriter, r *http.Request) {
	id, ok := h.Sessions.Peek(r)
	if !ok {
		w.WriteHeader(http.StatusOK) // Silent fail - no view session
		return
	}

	vm, ok := h.Views.Lookup(id)
	if !ok || vm.Closed() {
		h.Log.Debug("heartbeat for unknown view", zap.String("view_id", id))
		w.WriteHeader(http.StatusOK)
		return
	}

	vm.Touch()
	w.WriteHeader(http.StatusNoContent)
}
