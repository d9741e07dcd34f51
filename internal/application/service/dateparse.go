package service

import (
	"strconv"
	"strings"
	"time"
)

// Upstream exports encode transaction dates inconsistently: ISO strings
// from date inputs, day-first strings from the POS, bare spreadsheet
// serial numbers from re-saved files, and occasional garbage. Parsing is
// strictly ordered; once a pattern matches syntactically the result is
// final, so an impossible date like "32-13-2024" fails instead of
// wrapping into the next month.

// serialEpoch is day 1 of the legacy spreadsheet day count.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// fallbackLayouts are tried as a last resort for strings no known
// pattern covers.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	"Jan 2, 2006",
	"02-Jan-2006",
}

// ParseSalesDate parses a raw date cell into a UTC calendar date.
// It reports false for anything unparseable; callers skip such rows.
func ParseSalesDate(raw string) (time.Time, bool) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return time.Time{}, false
	}

	// YYYY-MM-DD, taken literally in UTC with no timezone shifting
	if y, m, d, ok := splitDigits(str, '-', 4, 2, 2); ok {
		return calendarDate(y, m, d)
	}

	// DD-MM-YYYY
	if d, m, y, ok := splitDigits(str, '-', 2, 2, 4); ok {
		if y < 1900 || y > 2099 {
			return time.Time{}, false
		}
		return calendarDate(y, m, d)
	}

	// D/M/YYYY
	if d, m, y, ok := splitSlashDate(str); ok {
		if y < 1900 || y > 2099 {
			return time.Time{}, false
		}
		return calendarDate(y, m, d)
	}

	// Bare numbers are legacy spreadsheet serial day counts. Strings
	// containing '-' or '/' already failed a date pattern above and must
	// not be reinterpreted as arithmetic.
	if !strings.ContainsAny(str, "/-") {
		if t, ok := parseSerialDate(str); ok {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// splitDigits matches three dash-separated all-digit groups of the exact
// widths given, returning their values in order.
func splitDigits(s string, sep byte, w1, w2, w3 int) (int, int, int, bool) {
	parts := strings.Split(s, string(sep))
	if len(parts) != 3 || len(parts[0]) != w1 || len(parts[1]) != w2 || len(parts[2]) != w3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || !isDigits(p) {
			return 0, 0, 0, false
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], true
}

// splitSlashDate matches D/M/YYYY with one- or two-digit day and month.
func splitSlashDate(s string) (int, int, int, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) < 1 || len(parts[1]) > 2 || len(parts[2]) != 4 {
		return 0, 0, 0, false
	}
	for _, p := range parts {
		if !isDigits(p) {
			return 0, 0, 0, false
		}
	}
	d, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	y, _ := strconv.Atoi(parts[2])
	return d, m, y, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// calendarDate builds a UTC date and rejects triplets the calendar does
// not contain, so a matched pattern with an impossible value fails
// instead of normalizing.
func calendarDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// parseSerialDate converts a spreadsheet serial day count. Serial 1 is
// 1 Jan 1900; counts above 60 are decremented by one to compensate for
// the epoch's phantom 29 Feb 1900. Values outside (0, 100000) are
// rejected.
func parseSerialDate(s string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial <= 0 || serial >= 100000 {
		return time.Time{}, false
	}
	if serial > 60 {
		serial--
	}
	t := serialEpoch.Add(time.Duration((serial - 1) * 24 * float64(time.Hour)))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
