// internal/domain/models/viewmode.go
package models

import "strings"

// ViewMode selects the single dashboard section that is shown.
type ViewMode string

const (
	ViewOverview ViewMode = "overview"
	ViewEvents   ViewMode = "events"
	ViewMembers  ViewMode = "members"
	ViewRevenue  ViewMode = "revenue"
)

// DefaultViewMode is the mode a new dashboard view starts in.
const DefaultViewMode = ViewOverview

// ViewModes lists every mode in button order.
func ViewModes() []ViewMode {
	return []ViewMode{ViewOverview, ViewEvents, ViewMembers, ViewRevenue}
}

// ParseViewMode maps a submitted value onto a ViewMode.
// The second result is false for anything outside the four modes.
func ParseViewMode(s string) (ViewMode, bool) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ViewOverview, ViewEvents, ViewMembers, ViewRevenue:
		return m, true
	default:
		return "", false
	}
}

// Label is the button caption for the mode.
func (m ViewMode) Label() string {
	switch m {
	case ViewOverview:
		return "Overview"
	case ViewEvents:
		return "Events"
	case ViewMembers:
		return "Members"
	case ViewRevenue:
		return "Revenue"
	default:
		return string(m)
	}
}
