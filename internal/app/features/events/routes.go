// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes returns the events API router, mounted at /api/admin/events.
//
// The {id} route reads the path segment; the collection route reads the
// "id" query parameter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Delete("/", h.DeleteByQuery)
	r.Delete("/{id}", h.DeleteByPath)
	return r
}
