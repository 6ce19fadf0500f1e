// Package money converts stored minor-unit amounts (paise) to rupees and
// formats them for display. Stored values are never converted in place;
// conversion happens only at format time.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Locale is the BCP 47 tag every amount is formatted for.
	Locale = "en-IN"
	// Code is the ISO 4217 currency code of every amount.
	Code = "INR"
	// MinorPerMajor is the number of paise in a rupee.
	MinorPerMajor = 100
)

var (
	tag     = language.MustParse(Locale)
	unit    = currency.INR
	printer = message.NewPrinter(tag)
)

// ToMajor converts minor units to an exact decimal amount in rupees.
func ToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// ToMajorFloat converts minor units to rupees for chart values.
func ToMajorFloat(minor int64) float64 {
	return ToMajor(minor).InexactFloat64()
}

// FormatCurrency formats an amount held in minor units, e.g. 1245000 -> "₹12,450.00".
func FormatCurrency(minor int64) string {
	return FormatMajor(ToMajor(minor))
}

// FormatMajor formats an amount already in rupees. Values are rounded to
// whole paise; grouping follows the en-IN convention. The sign of a
// negative amount precedes the symbol, e.g. "-₹50.00".
func FormatMajor(major decimal.Decimal) string {
	r := major.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	return printer.Sprintf("%s%v%.2f", sign, currency.Symbol(unit), r.InexactFloat64())
}

// Meta describes the currency to front-end chart callbacks.
type Meta struct {
	Locale        string `json:"locale"`
	Code          string `json:"code"`
	MinorPerMajor int    `json:"minorPerMajor"`
}

// CurrencyMeta returns the fixed locale/currency pair.
func CurrencyMeta() Meta {
	return Meta{Locale: Locale, Code: Code, MinorPerMajor: MinorPerMajor}
}
