package printer

import (
	"fmt"
	"math"
	"time"
)

// TimeAgo returns a human-readable relative time string in UTC.
// Examples: "5 seconds ago (UTC)", "2 minutes ago (UTC)", "3 hours ago (UTC)".
func TimeAgo(t time.Time) string {
	diff := time.Now().UTC().Sub(t.UTC())
	if diff < 0 {
		return "in the future (UTC)"
	}

	var n int
	var unit string
	switch {
	case diff < time.Minute:
		n, unit = int(diff.Seconds()), "second"
	case diff < time.Hour:
		n, unit = int(diff.Minutes()), "minute"
	case diff < 24*time.Hour:
		n, unit = int(diff.Hours()), "hour"
	default:
		n, unit = int(diff.Hours()/24), "day"
	}

	if n == 1 {
		return fmt.Sprintf("1 %s ago (UTC)", unit)
	}
	return fmt.Sprintf("%d %ss ago (UTC)", n, unit)
}

// FormatDate returns a formatted calendar day, e.g. "2026-08-31 Mon".
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02 Mon")
}

// FormatHour formats a fractional hour as "HH:MM".
func FormatHour(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatSpan formats a task's hour span as "HH:MM-HH:MM".
func FormatSpan(start, duration float64) string {
	return FormatHour(start) + "-" + FormatHour(start+duration)
}
