// Package htmlsanitize cleans short inline HTML (alert messages) before
// it is rendered unescaped.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// inlinePolicy allows emphasis, code and safe links, and nothing block-level.
func inlinePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "u", "code", "mark", "br")
		p.AllowStandardURLs()
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns input with every disallowed element and attribute stripped.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return inlinePolicy().Sanitize(input)
}

// SanitizeToHTML sanitizes input and marks it safe for html/template.
func SanitizeToHTML(input string) template.HTML {
	return template.HTML(Sanitize(input))
}

// IsPlainText reports whether input contains no markup at all.
func IsPlainText(input string) bool {
	return !strings.ContainsAny(input, "<>")
}
