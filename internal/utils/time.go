package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD. Calendar dates carry no time-of-day or
// timezone component, so UTC keeps day arithmetic exact.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}

// Nights counts whole days in the half-open range [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// DateRange lists every date in [start, end) as YYYY-MM-DD, ascending.
func DateRange(start, end time.Time) []string {
	out := []string{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, FormatDate(d))
	}
	return out
}
