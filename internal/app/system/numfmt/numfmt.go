// Package numfmt formats plain counters for display.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Count formats n with en-IN digit grouping, e.g. 1234 -> "1,234".
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}
