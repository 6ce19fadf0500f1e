// internal/app/features/dashboard/page.go
package dashboard

import (
	"html/template"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/charts"
	"github.com/dalemusser/eventhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/eventhub/internal/app/system/money"
	"github.com/dalemusser/eventhub/internal/app/system/numfmt"
	"github.com/dalemusser/eventhub/internal/app/system/viewdata"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

// pageData is everything admin_dashboard renders. Templates carry no
// helper funcs, so every label, number and class is computed here.
type pageData struct {
	viewdata.BaseVM

	Loading        bool
	RefreshSeconds int
	ViewMode       string
	Tabs           []modeTab
	Sections       Sections

	StatCards    []statCard
	Alerts       []alertRow
	QuickLinks   []quickLinkRow
	EventSummary eventSummary
	Events       []eventRow
	Members      []memberRow
	Membership   []membershipRow
	Revenue      revenueRow

	ChartsURL string
}

type modeTab struct {
	Value  string
	Label  string
	Active bool
	Class  string
}

type statCard struct {
	Label string
	Value string
	Icon  string
}

type alertRow struct {
	Type    string
	Message template.HTML
	Date    string
	Class   string
}

type quickLinkRow struct {
	Title string
	URL   string
	Icon  string
}

type eventSummary struct {
	Total     string
	Published string
}

type eventRow struct {
	ID          int64
	Title       string
	Date        string
	Attendees   string
	StatusLabel string
	StatusClass string
}

type memberRow struct {
	Name     string
	Email    string
	Plan     string
	JoinDate string
}

type membershipRow struct {
	Label string
	Count string
	Color string
}

type revenueRow struct {
	ThisMonth          string
	AverageTransaction string
	TotalYTD           string
}

const (
	tabActiveClass   = "btn btn-primary"
	tabInactiveClass = "btn btn-outline"

	badgeUpcoming = "badge badge-upcoming"
	badgeOther    = "badge badge-muted"
)

var alertClasses = map[models.AlertType]string{
	models.AlertWarning: "alert alert-warning",
	models.AlertInfo:    "alert alert-info",
	models.AlertError:   "alert alert-error",
	models.AlertSuccess: "alert alert-success",
}

func buildPage(r *http.Request, snap Snapshot, loadingDelay time.Duration) pageData {
	d := snap.Data

	data := pageData{
		BaseVM:         viewdata.NewBaseVM(r, "Admin Dashboard", "/"),
		Loading:        snap.Loading,
		RefreshSeconds: refreshSeconds(loadingDelay),
		ViewMode:       string(snap.ViewMode),
		Sections:       snap.Sections(),
		ChartsURL:      "/admin/charts",
	}

	for _, m := range models.ViewModes() {
		tab := modeTab{Value: string(m), Label: m.Label(), Active: m == snap.ViewMode, Class: tabInactiveClass}
		if tab.Active {
			tab.Class = tabActiveClass
		}
		data.Tabs = append(data.Tabs, tab)
	}

	s := d.Stats
	data.StatCards = []statCard{
		{Label: "Total Events", Value: numfmt.Count(s.TotalEvents), Icon: "calendar"},
		{Label: "Published Events", Value: numfmt.Count(s.PublishedEvents), Icon: "check"},
		{Label: "Total Registrations", Value: numfmt.Count(s.TotalRegistrations), Icon: "users"},
		{Label: "Active Clubs", Value: numfmt.Count(s.ActiveClubs), Icon: "flag"},
		{Label: "Revenue This Month", Value: money.FormatCurrency(s.RevenueThisMonth), Icon: "rupee"},
		{Label: "Pending Tasks", Value: numfmt.Count(s.PendingTasks), Icon: "clipboard"},
		{Label: "New Members", Value: numfmt.Count(s.NewMembers), Icon: "user-plus"},
	}

	for _, a := range d.Alerts {
		data.Alerts = append(data.Alerts, alertRow{
			Type:    string(a.Type),
			Message: htmlsanitize.SanitizeToHTML(a.Message),
			Date:    a.Date,
			Class:   alertClass(a.Type),
		})
	}

	for _, q := range d.QuickLinks {
		data.QuickLinks = append(data.QuickLinks, quickLinkRow{Title: q.Title, URL: q.Path, Icon: q.Icon})
	}

	data.EventSummary = eventSummary{
		Total:     numfmt.Count(s.TotalEvents),
		Published: numfmt.Count(s.PublishedEvents),
	}

	for _, e := range d.Events {
		data.Events = append(data.Events, eventRow{
			ID:          e.ID,
			Title:       e.Title,
			Date:        e.Date,
			Attendees:   numfmt.Count(e.Attendees),
			StatusLabel: capitalize(e.Status),
			StatusClass: statusClass(e.Status),
		})
	}

	for _, m := range d.Members {
		data.Members = append(data.Members, memberRow{Name: m.Name, Email: m.Email, Plan: m.Plan, JoinDate: m.JoinDate})
	}

	for _, p := range charts.Membership(d.Membership) {
		data.Membership = append(data.Membership, membershipRow{Label: p.Label, Count: numfmt.Count(p.Value), Color: p.Color})
	}

	data.Revenue = revenueRow{
		ThisMonth:          money.FormatCurrency(d.Revenue.ThisMonth),
		AverageTransaction: money.FormatCurrency(d.Revenue.AverageTransaction),
		TotalYTD:           money.FormatCurrency(d.Revenue.TotalYTD),
	}

	return data
}

func alertClass(t models.AlertType) string {
	if c, ok := alertClasses[t]; ok {
		return c
	}
	return "alert"
}

func statusClass(status string) string {
	if status == models.EventUpcoming {
		return badgeUpcoming
	}
	return badgeOther
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func refreshSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
