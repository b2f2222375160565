package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDate is returned by the strict parsers when the input cannot be
// turned into a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ISOLayout is the date-only layout used for display and stat dates.
const ISOLayout = "2006-01-02"

// timestampLayout mirrors the millisecond UTC form persisted for the start date.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var isoDatePattern = regexp.MustCompile(`^\d{1,4}-\d{1,2}-\d{1,2}$`)

// Normalize truncates t to midnight of its calendar day in t's location.
// Every date comparison in the tracker goes through Normalize first.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// AddDays moves t by n calendar days and returns the normalized result.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from b to a. The result is
// negative when a precedes b. Both dates are projected onto UTC midnights of
// their own calendar day so DST transitions never shift the count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ua.Sub(ub).Hours() / 24)
}

// FormatISO renders t as zero-padded YYYY-MM-DD.
func FormatISO(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// FormatTimestamp renders the UTC instant of t with millisecond precision,
// e.g. 2025-01-05T23:00:00.000Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseISO parses YYYY[-MM[-DD]] leniently into local midnight of loc.
// Missing or malformed components default to 1; it never fails.
func ParseISO(s string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(strings.TrimSpace(s), "-")
	component := func(i int) int {
		if i >= len(parts) {
			return 1
		}
		n, ok := leadingInt(parts[i])
		if !ok || n == 0 {
			return 1
		}
		return n
	}
	return time.Date(component(0), time.Month(component(1)), component(2), 0, 0, 0, 0, loc)
}

// ParseStartDate is the strict parser used before a value replaces the
// persisted start date. It accepts RFC 3339 timestamps and YYYY-MM-DD dates
// and returns local midnight of the resulting calendar day in loc.
func ParseStartDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Normalize(ts.In(loc)), nil
	}
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation("2006-1-2", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// leadingInt reads the optional sign and digits at the start of s, skipping
// leading whitespace, and ignores anything after them.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > 1_000_000 {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
