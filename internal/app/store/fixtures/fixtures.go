// Package fixtures holds the static seed data the dashboard and the events
// API start from. Every accessor returns a fresh copy.
package fixtures

import "github.com/dalemusser/eventhub/internal/domain/models"

var dashboard = models.Dashboard{
	Stats: models.Stats{
		TotalEvents:        24,
		PublishedEvents:    18,
		TotalRegistrations: 342,
		ActiveClubs:        8,
		RevenueThisMonth:   1245000,
		PendingTasks:       5,
		NewMembers:         28,
	},
	Trends: models.Trends{
		Registrations: []int64{32, 45, 67, 89, 72, 58, 65, 87, 91, 105, 120, 132},
		Revenue:       []int64{120000, 180000, 220000, 350000, 280000, 190000, 240000, 320000, 410000, 380000, 420000, 460000},
	},
	Membership: []models.MembershipSlice{
		{Category: "Standard", Count: 245, Color: "#4F46E5"},
		{Category: "Premium", Count: 125, Color: "#10B981"},
		{Category: "VIP", Count: 78, Color: "#F59E0B"},
		{Category: "Trial", Count: 42, Color: "#6B7280"},
	},
	Members: []models.Member{
		{ID: 1, Name: "Piyush Sharma", Email: "piyush@example.com", Plan: "Premium", JoinDate: "08/03/2025"},
		{ID: 2, Name: "Aditi Mehta", Email: "aditi@example.com", Plan: "Standard", JoinDate: "07/03/2025"},
		{ID: 3, Name: "Ravi Kumar", Email: "ravi@example.com", Plan: "VIP", JoinDate: "06/03/2025"},
		{ID: 4, Name: "Ananya Patel", Email: "ananya@example.com", Plan: "Standard", JoinDate: "05/03/2025"},
		{ID: 5, Name: "Sohail Khan", Email: "sohail@example.com", Plan: "VIP", JoinDate: "04/03/2025"},
	},
	Alerts: []models.Alert{
		{ID: 1, Type: models.AlertWarning, Message: `Event capacity for "Garba Night" is at 85%`, Date: "10/03/2025"},
		{ID: 2, Type: models.AlertInfo, Message: `3 new membership applications need review for "MakerCarnival"`, Date: "09/03/2025"},
		{ID: 3, Type: models.AlertError, Message: "Payment processing error for event ticket #28394", Date: "08/03/2025"},
		{ID: 4, Type: models.AlertSuccess, Message: `Monthly revenue target achieved during "Diwali Festival" event`, Date: "07/03/2025"},
	},
	QuickLinks: []models.QuickLink{
		{Title: "Create New Event", Path: "/admin/events/create", Icon: "calendar"},
		{Title: "Add New Member", Path: "/admin/members/add", Icon: "user"},
		{Title: "Send Email Campaign", Path: "/admin/emails/new", Icon: "mail"},
		{Title: "View Recent Transactions", Path: "/admin/finance/transactions", Icon: "credit-card"},
	},
	Events: []models.Event{
		{ID: 1, Title: "Annual Charity Gala", Date: "2025-04-15", Attendees: 120, Status: models.EventUpcoming},
		{ID: 2, Title: "Tech Conference 2025", Date: "2025-05-22", Attendees: 250, Status: models.EventUpcoming},
		{ID: 3, Title: "Cultural Festival", Date: "2025-03-01", Attendees: 180, Status: models.EventCompleted},
	},
	Revenue: models.RevenueSummary{
		ThisMonth:          1245000,
		AverageTransaction: 364000,
		TotalYTD:           3240000,
	},
}

var eventRefs = []models.EventRef{
	{ID: "1"},
	{ID: "2"},
}

// Dashboard returns the dashboard seed.
func Dashboard() models.Dashboard {
	return dashboard.Clone()
}

// EventRefs returns the seed list for the events API.
func EventRefs() []models.EventRef {
	return append([]models.EventRef(nil), eventRefs...)
}
