package testutil

import (
	"testing"

	"github.com/dalemusser/eventhub/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates installs a booted engine holding the shared layout plus
// the given feature sets, the same way the router does at startup.
// The engine is uninstalled when the test ends.
func BootTemplates(t testing.TB, sets ...templates.Set) {
	t.Helper()

	templates.Reset()
	templates.Register(resources.SharedSet())
	for _, s := range sets {
		templates.Register(s)
	}

	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
	templates.UseEngine(eng, zap.NewNop())
	t.Cleanup(func() { templates.UseEngine(nil, nil) })
}
