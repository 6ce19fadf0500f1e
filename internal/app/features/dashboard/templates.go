// internal/app/features/dashboard/templates.go
package dashboard

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

// Templates is the dashboard page set.
var Templates = templates.Set{
	Name:     "dashboard",
	FS:       FS,
	Patterns: []string{"templates/*.gohtml"},
}

func init() {
	templates.Register(Templates)
}
