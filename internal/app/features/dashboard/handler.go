// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/auditlog"
	"github.com/dalemusser/eventhub/internal/app/system/charts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ViewSessions resolves the view id a request belongs to.
type ViewSessions interface {
	ViewID(w http.ResponseWriter, r *http.Request) (string, error)
}

type Handler struct {
	Views        *Registry
	Sessions     ViewSessions
	Audit        *auditlog.Logger
	LoadingDelay time.Duration
	Log          *zap.Logger
}

func NewHandler(views *Registry, sessions ViewSessions, audit *auditlog.Logger, loadingDelay time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		Views:        views,
		Sessions:     sessions,
		Audit:        audit,
		LoadingDelay: loadingDelay,
		Log:          logger,
	}
}

// view returns the caller's view, creating it on first visit.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) (string, *ViewModel, bool) {
	id, err := h.Sessions.ViewID(w, r)
	if err != nil {
		h.Log.Error("resolve dashboard view session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", nil, false
	}
	vm, _ := h.Views.Get(id)
	return id, vm, true
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, vm, ok := h.view(w, r)
	if !ok {
		return
	}

	snap := vm.Snapshot()
	data := buildPage(r, snap, h.LoadingDelay)

	h.Log.Debug("admin dashboard served",
		zap.String("view_mode", string(snap.ViewMode)),
		zap.Bool("loading", snap.Loading))

	templates.Render(w, r, "admin_dashboard", data)
}

// HandleSetView handles POST /admin/view.
//
// The form field "mode" must be one of overview, events, members or
// revenue; anything else is a 400. On success it redirects back to /admin.
func (h *Handler) HandleSetView(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	mode, valid := models.ParseViewMode(r.PostForm.Get("mode"))
	if !valid {
		http.Error(w, "unknown view mode", http.StatusBadRequest)
		return
	}

	id, vm, ok := h.view(w, r)
	if !ok {
		return
	}

	prev := vm.SetViewMode(mode)
	h.Audit.ViewModeChanged(r, id, string(prev), string(mode))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// chartsResponse is the JSON body of GET /admin/charts.
type chartsResponse struct {
	Loading       bool                     `json:"loading"`
	ViewMode      string                   `json:"viewMode"`
	Registrations charts.LineChart         `json:"registrations"`
	Revenue       charts.RevenueChart      `json:"revenue"`
	Membership    charts.DoughnutChart     `json:"membership"`
	Points        []charts.MembershipPoint `json:"membershipPoints"`
}

// ServeCharts handles GET /admin/charts.
func (h *Handler) ServeCharts(w http.ResponseWriter, r *http.Request) {
	_, vm, ok := h.view(w, r)
	if !ok {
		return
	}

	snap := vm.Snapshot()
	resp := chartsResponse{
		Loading:       snap.Loading,
		ViewMode:      string(snap.ViewMode),
		Registrations: snap.RegistrationSeries(),
		Revenue:       snap.RevenueSeries(),
		Membership:    snap.MembershipSeries(),
		Points:        charts.Membership(snap.Data.Membership),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
