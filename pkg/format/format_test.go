package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDateLayouts(t *testing.T) {
	cases := []string{
		"2025-03-05",
		"2025-03-05T14:30",
		"2025-03-05T14:30:00Z",
	}
	for _, raw := range cases {
		parsed, err := ParseDate(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 5 {
			t.Fatalf("parse %q: unexpected %v", raw, parsed)
		}
	}
	if _, err := ParseDate("05/03/2025"); err == nil {
		t.Fatal("expected non-ISO input to fail")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "05/03/2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatDateTime(d); got != "05/03/2025 14:30" {
		t.Fatalf("unexpected datetime %q", got)
	}
	if FormatDate(time.Time{}) != "" {
		t.Fatal("zero time must render empty")
	}
}

func TestFormatVolume(t *testing.T) {
	got := FormatVolume(decimal.NewFromFloat(1234.56))
	// es-ES groups thousands with a dot and keeps one decimal.
	if got != "1.234,6" {
		t.Fatalf("unexpected volume %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(1.5))
	if got != "1,500" {
		t.Fatalf("unexpected currency %q", got)
	}
}

func TestIsFutureDate(t *testing.T) {
	now := time.Now()
	if !IsFutureDate(now.Add(time.Hour), now) {
		t.Fatal("expected future date")
	}
	if IsFutureDate(now.Add(-time.Hour), now) {
		t.Fatal("expected past date")
	}
	if IsFutureDate(now, now) {
		t.Fatal("boundary must not count as future")
	}
}
