// Package dates normalizes the date representations found in sheet cells
// into civil dates (UTC midnight) and renders them as DD.MM.YYYY.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical display layout, e.g. 05.01.2026.
const CanonicalLayout = "02.01.2006"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var reCanonical = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)

// gviz renders date cells as Date(year,zeroBasedMonth,day[,h,m,s]).
var reVendorDate = regexp.MustCompile(`^Date\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*(?:,[^)]*)?\)$`)

// Civil truncates t to its calendar date in t's own location, returned as UTC midnight.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCanonicalOrIso accepts ISO-like strings (anything with a hyphen) or
// DD.MM.YYYY. Malformed input and out-of-range components both yield false.
func ParseCanonicalOrIso(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if strings.Contains(text, "-") {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return Civil(t), true
			}
		}
	}

	m := reCanonical.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	return civilDate(year, month, day)
}

// civilDate rejects combinations that time.Date would silently roll over (31.02 etc).
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// AddDays returns the date n calendar days after d.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// FormatCanonical renders d as zero-padded DD.MM.YYYY.
func FormatCanonical(d time.Time) string {
	y, m, day := d.Date()
	return fmt.Sprintf("%02d.%02d.%04d", day, int(m), y)
}

// ExtractDisplayText turns a cell's textual form into display text. The
// vendor Date(y,m,d) encoding becomes DD.MM.YYYY; anything else passes through.
func ExtractDisplayText(raw string) string {
	m := reVendorDate.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return raw
	}

	y, errY := strconv.Atoi(m[1])
	mon, errM := strconv.Atoi(m[2])
	d, errD := strconv.Atoi(m[3])
	if errY != nil || errM != nil || errD != nil {
		return raw
	}

	// month is zero-based in the encoding; time.Date normalizes overflow the
	// same way the sheet does.
	return FormatCanonical(time.Date(y, time.Month(mon+1), d, 0, 0, 0, 0, time.UTC))
}
