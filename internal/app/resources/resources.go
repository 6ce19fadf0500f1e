// Package resources embeds the layout templates every page set is compiled on.
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Embed the shared template files.
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// SharedSet is the layout-only set. The engine clones it into every
// feature page, so it must not define page entrypoints.
func SharedSet() templates.Set {
	return templates.Set{
		Name:     "shared",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	}
}

// LoadSharedTemplates registers the shared set. Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(SharedSet())
	})
}
