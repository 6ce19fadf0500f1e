// internal/app/features/events/handler.go
package events

import (
	"encoding/json"
	"net/http"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/auditlog"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin events API.
type Handler struct {
	Store eventstore.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler constructs an events Handler.
func NewHandler(store eventstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Audit: audit,
		Log:   logger,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Events []models.EventRef `json:"events"`
}

const (
	msgDeleted      = "Event deleted"
	errIDRequired   = "Event ID is required"
	errDeleteFailed = "Failed to delete event"
	errListFailed   = "Failed to list events"
)

// DeleteByPath handles DELETE /api/admin/events/{id}.
func (h *Handler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, chi.URLParam(r, "id"))
}

// DeleteByQuery handles DELETE /api/admin/events?id=....
func (h *Handler) DeleteByQuery(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, r.URL.Query().Get("id"))
}

// delete removes every entry with id.
//
// Empty id: 400 {"error":"Event ID is required"}.
// Otherwise: 200 {"message":"Event deleted"}, also when nothing matched.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errIDRequired})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete event")
	defer cancel()

	removed, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete event failed", zap.String("event_id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errDeleteFailed})
		return
	}

	h.Log.Info("event delete processed",
		zap.String("event_id", id),
		zap.Int("removed", removed))
	h.Audit.EventDeleted(r, id, removed)

	writeJSON(w, http.StatusOK, messageResponse{Message: msgDeleted})
}

// List handles GET /api/admin/events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list events")
	defer cancel()

	refs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list events failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errListFailed})
		return
	}
	if refs == nil {
		refs = []models.EventRef{}
	}
	writeJSON(w, http.StatusOK, listResponse{Events: refs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
