package analysis

import (
	"strconv"
	"strings"
)

// clockHours converts an HH:MM:SS (or HH:MM) wall-clock string to hours
// since midnight. Malformed components parse as zero; callers see whatever
// arithmetic falls out rather than an error.
func clockHours(clock string) float64 {
	parts := strings.Split(clock, ":")
	var h, m, s int
	if len(parts) > 0 {
		h, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		s, _ = strconv.Atoi(parts[2])
	}
	return float64(h) + float64(m)/60.0 + float64(s)/3600.0
}

// Hours returns end minus start in hours. Both times sit on the same
// nominal day, so a task whose end precedes its start yields a negative
// value. Nothing clamps it: classification must see the raw figure.
func Hours(start, end string) float64 {
	return clockHours(end) - clockHours(start)
}

// trimClock shortens HH:MM:SS to the HH:MM form used in slots and messages.
func trimClock(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}
