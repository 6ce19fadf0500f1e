// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/eventhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler is the errors feature handler.
// No store needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound is the router's fallback for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("not found", zap.String("path", r.URL.Path))
	Render(w, r, http.StatusNotFound, "Page not found", "The page you asked for does not exist.")
}

// MethodNotAllowed is the router's fallback for a known path with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Render(w, r, http.StatusMethodNotAllowed, "Method not allowed", "That action is not supported here.")
}

// Render writes an error response. API callers get {"error": msg} JSON;
// browsers get the error_page template.
func Render(w http.ResponseWriter, r *http.Request, status int, title, msg string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": title})
		return
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, "/admin"),
		Status:  status,
		Message: msg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
