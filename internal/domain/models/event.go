// internal/domain/models/event.go
package models

// Event statuses used by the fixtures.
const (
	EventUpcoming  = "upcoming"
	EventCompleted = "completed"
)

// Event is a row in the dashboard's events table.
// Date is an ISO-8601 calendar date.
type Event struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Attendees int64  `json:"attendees"`
	Status    string `json:"status"`
}

// EventRef is an entry in the events API list. It only carries an identifier.
type EventRef struct {
	ID string `json:"id"`
}
