// internal/domain/models/dashboard.go
package models

// Stats holds the headline counters shown on the dashboard.
// RevenueThisMonth is stored in minor currency units (paise).
type Stats struct {
	TotalEvents        int64 `json:"totalEvents"`
	PublishedEvents    int64 `json:"publishedEvents"`
	TotalRegistrations int64 `json:"totalRegistrations"`
	ActiveClubs        int64 `json:"activeClubs"`
	RevenueThisMonth   int64 `json:"revenueThisMonth"`
	PendingTasks       int64 `json:"pendingTasks"`
	NewMembers         int64 `json:"newMembers"`
}

// TrendMonths is the length of each trend series (Jan..Dec).
const TrendMonths = 12

// Trends holds two parallel monthly series; index 0 is January.
// Revenue values are minor currency units.
type Trends struct {
	Registrations []int64 `json:"registrations"`
	Revenue       []int64 `json:"revenue"`
}

// MembershipSlice is one category in the membership breakdown.
type MembershipSlice struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
	Color    string `json:"color"`
}

// RevenueSummary backs the cards in the revenue section.
// All amounts are minor currency units.
type RevenueSummary struct {
	ThisMonth          int64 `json:"thisMonth"`
	AverageTransaction int64 `json:"averageTransaction"`
	TotalYTD           int64 `json:"totalYtd"`
}

// Dashboard bundles every entity a dashboard view is seeded with.
type Dashboard struct {
	Stats      Stats
	Trends     Trends
	Membership []MembershipSlice
	Members    []Member
	Alerts     []Alert
	QuickLinks []QuickLink
	Events     []Event
	Revenue    RevenueSummary
}

// Clone returns a deep copy so callers can mutate it freely.
func (d Dashboard) Clone() Dashboard {
	out := d
	out.Trends = Trends{
		Registrations: append([]int64(nil), d.Trends.Registrations...),
		Revenue:       append([]int64(nil), d.Trends.Revenue...),
	}
	out.Membership = append([]MembershipSlice(nil), d.Membership...)
	out.Members = append([]Member(nil), d.Members...)
	out.Alerts = append([]Alert(nil), d.Alerts...)
	out.QuickLinks = append([]QuickLink(nil), d.QuickLinks...)
	out.Events = append([]Event(nil), d.Events...)
	return out
}
