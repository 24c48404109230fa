// Package format renders dates, volumes and prices the way the site's
// Spanish-speaking staff expect to read them (es-ES locale).
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esPrinter = message.NewPrinter(language.EuropeanSpanish)

// Accepted layouts for incoming date strings, most specific first.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-style date or datetime string.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatDate renders dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders dd/mm/yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// FormatVolume renders liters with es-ES grouping and at most one decimal.
func FormatVolume(liters decimal.Decimal) string {
	return esPrinter.Sprint(number.Decimal(
		liters.InexactFloat64(),
		number.MaxFractionDigits(1),
	))
}

// FormatCurrency renders a price with exactly three decimals (per-liter prices).
func FormatCurrency(amount decimal.Decimal) string {
	return esPrinter.Sprint(number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(3),
		number.MaxFractionDigits(3),
	))
}

// IsFutureDate reports whether the value lies strictly after now.
func IsFutureDate(t, now time.Time) bool {
	return t.After(now)
}
