// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is the site name shown in the page header and title.
const DefaultSiteName = "EventHub"
