package resources

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
)

func TestSiteHeadTemplate(t *testing.T) {
	tmpl, err := template.ParseFS(FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data := struct{ SiteName, Title string }{"EventHub", "Admin Dashboard"}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "site_head", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<title>Admin Dashboard · EventHub</title>", `href="/static/css/dashboard.css"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSharedSet_HasNoPageEntrypoints(t *testing.T) {
	tmpl, err := template.ParseFS(SharedSet().FS, SharedSet().Patterns...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, name := range []string{"error_page", "admin_dashboard"} {
		if tmpl.Lookup(name) != nil {
			t.Errorf("shared set defines page %q", name)
		}
	}
}

func TestLoadSharedTemplates_Idempotent(t *testing.T) {
	LoadSharedTemplates()
	LoadSharedTemplates()
}
