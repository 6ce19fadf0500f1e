// internal/domain/models/quicklink.go
package models

// QuickLink is a navigation shortcut in the overview section.
// Icon names an icon in the front-end icon set (calendar, user, mail, credit-card).
type QuickLink struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}
