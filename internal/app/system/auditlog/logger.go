// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"go.uber.org/zap"
)

// Event types for admin actions.
const (
	EventViewModeChanged = "dashboard_view_mode_changed"
	EventEventDeleted    = "event_deleted"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for admin actions.
	// Values: "log" (zap), "off" (disabled)
	Admin string
}

// Event is one audited admin action.
type Event struct {
	EventType string
	IP        string
	UserAgent string
	Success   bool
	Details   map[string]string
}

// Logger writes audit events as structured zap lines.
type Logger struct {
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// Log records an event unless disabled.
// A nil Logger is a no-op so tests can pass nil.
func (l *Logger) Log(event Event) {
	if l == nil || l.config.Admin == "off" {
		return
	}

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", "admin"),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// EventDeleted logs a call to the events delete endpoint.
func (l *Logger) EventDeleted(r *http.Request, eventID string, removed int) {
	l.Log(Event{
		EventType: EventEventDeleted,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"event_id": eventID,
			"matched":  boolString(removed > 0),
		},
	})
}

// ViewModeChanged logs a dashboard section switch.
func (l *Logger) ViewModeChanged(r *http.Request, viewID, from, to string) {
	l.Log(Event{
		EventType: EventViewModeChanged,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"view_id": viewID,
			"from":    from,
			"to":      to,
		},
	})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
