// internal/app/features/errors/templates.go
package errors

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

// Templates is the errors page set.
var Templates = templates.Set{
	Name:     "errors",
	FS:       FS,
	Patterns: []string{"templates/*.gohtml"},
}

func init() {
	templates.Register(Templates)
}
