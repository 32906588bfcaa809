package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the display/API date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactLayout is the stored matchday date format (YYYYMMDD). Compact dates
// compare lexically in calendar order.
const CompactLayout = "20060102"

var acceptedLayouts = []string{CompactLayout, DateLayout, "2006/01/02", "02.01.2006", "02/01/2006"}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompact formats a time as YYYYMMDD in its current location.
func FormatCompact(t time.Time) string {
	return t.Format(CompactLayout)
}

// ParseCompact parses a YYYYMMDD string.
func ParseCompact(value string) (time.Time, error) {
	return time.Parse(CompactLayout, value)
}

// NormalizeDate converts any accepted date spelling to YYYYMMDD. Blank or
// unparseable input yields "".
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatCompact(t)
		}
	}
	return ""
}

// Today returns the current calendar day in loc as YYYYMMDD.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return FormatCompact(now)
}

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
