// internal/domain/models/alert.go
package models

// AlertType is the severity of a dashboard alert.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertError   AlertType = "error"
	AlertSuccess AlertType = "success"
)

// Alert is a notice shown in the overview alerts panel.
type Alert struct {
	ID      int64     `json:"id"`
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
	Date    string    `json:"date"`
}
