package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger is the part of the event store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Store     Pinger
	StoreKind string
	Log       *zap.Logger
}

// NewHandler constructs a health Handler with the event store and logger.
func NewHandler(store Pinger, storeKind string, logger *zap.Logger) *Handler {
	return &Handler{
		Store:     store,
		StoreKind: storeKind,
		Log:       logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "store":"memory" }
//
// On store failure: 503 and
//
//	{ "status":"error", "store":"sqlite", "message":"Event store unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Store:  h.StoreKind,
	}

	if err := h.Store.Ping(ctx); err != nil {
		h.Log.Error("health-check: event store ping failed",
			zap.String("store", h.StoreKind), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Event store unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
