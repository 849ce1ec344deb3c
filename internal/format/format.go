// Package format holds the small display helpers shared by the review
// screens. Every helper degrades to the Placeholder on bad input instead of
// returning an error; callers render whatever comes back.
package format

import (
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

// Placeholder stands in for anything that could not be derived.
const Placeholder = "N/A"

// DefaultCurrency is used when a payment carries no currency code.
const DefaultCurrency = "BDT"

var printer = message.NewPrinter(language.English)

// AgeYears is the calendar age at now: full years since dob, minus one if
// the birthday has not yet occurred this year.
func AgeYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// Age renders the calendar age for a stored date-of-birth string.
func Age(dob string, now time.Time) string {
	t, ok := parseDate(dob)
	if !ok {
		return Placeholder
	}
	return strconv.Itoa(AgeYears(t, now))
}

// Timestamp renders a store-native timestamp for display. It accepts a
// time.Time, an RFC3339 or date-only string, or an epoch value in
// milliseconds; anything else renders as the placeholder.
func Timestamp(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02 Jan 2006, 15:04")
	case string:
		if parsed, ok := parseDate(t); ok {
			return parsed.Format("02 Jan 2006, 15:04")
		}
	case int64:
		return time.UnixMilli(t).UTC().Format("02 Jan 2006, 15:04")
	case float64:
		return time.UnixMilli(int64(t)).UTC().Format("02 Jan 2006, 15:04")
	}
	return Placeholder
}

// Currency renders a payment amount with its currency symbol. A missing or
// unparseable amount renders as the placeholder, an unknown code falls back
// to DefaultCurrency.
func Currency(a models.Amount, code string) string {
	if a.IsZeroValue() {
		return Placeholder
	}
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit, _ = currency.ParseISO(DefaultCurrency)
	}
	return printer.Sprintf("%v %.2f", currency.Symbol(unit), a.Value())
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
