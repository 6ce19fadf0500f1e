package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/eventhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Payment processing error for event ticket #28394")
	if result != "Payment processing error for event ticket #28394" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_InlineFormatting(t *testing.T) {
	input := "<strong>Bold</strong> and <em>italic</em>"
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected inline formatting preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "Hello<script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "Hello" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<strong onclick="alert('xss')">Click</strong>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "onclick") {
		t.Errorf("expected onclick attribute removed, got %q", result)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", result)
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	input := `<a href="https://example.com">Link</a>`
	result := htmlsanitize.Sanitize(input)
	if !strings.Contains(result, `href="https://example.com"`) {
		t.Errorf("expected safe link preserved, got %q", result)
	}
	if !strings.Contains(result, "nofollow") {
		t.Errorf("expected rel=nofollow on link, got %q", result)
	}
}

func TestSanitize_StripsBlockElements(t *testing.T) {
	input := `<div><h1>Title</h1><iframe src="https://evil.com"></iframe></div>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "<div") || strings.Contains(result, "<h1") || strings.Contains(result, "iframe") {
		t.Errorf("expected block elements stripped, got %q", result)
	}
	if !strings.Contains(result, "Title") {
		t.Errorf("expected text content kept, got %q", result)
	}
}

func TestSanitizeToHTML_ReturnsTemplateHTML(t *testing.T) {
	result := htmlsanitize.SanitizeToHTML("<em>x</em>")
	if result != template.HTML("<em>x</em>") {
		t.Errorf("got %q", result)
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("no tags here") {
		t.Error("expected plain text")
	}
	if htmlsanitize.IsPlainText("<b>tag</b>") {
		t.Error("expected markup detected")
	}
}
