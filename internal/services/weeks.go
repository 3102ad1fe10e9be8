package services

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all timesheet dates.
const DateLayout = "01/02/2006"

// Epoch is the first day the company tracked time. Weekly buckets count
// forward from here; they are not ISO-week aligned.
var Epoch = time.Date(2016, time.August, 1, 0, 0, 0, 0, time.UTC)

// Midnight truncates t to 00:00 UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildWeeklyRanges returns every 7-day bucket from the epoch through today
// as "MM/DD/YYYY-MM/DD/YYYY" labels. Buckets are contiguous and
// non-overlapping; the final bucket is truncated to end today.
func BuildWeeklyRanges(today time.Time) []string {
	today = Midnight(today)

	var weeks []string

	for day := Epoch; !day.After(today); day = day.AddDate(0, 0, 7) {
		last := day.AddDate(0, 0, 6)
		if last.After(today) {
			last = today
		}
		weeks = append(weeks, day.Format(DateLayout)+"-"+last.Format(DateLayout))
	}

	return weeks
}

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)

	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected MM/DD/YYYY", value)
	}

	return parsed, nil
}

// ParseRange splits a "MM/DD/YYYY-MM/DD/YYYY" week label into its bounds.
func ParseRange(value string) (time.Time, time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)

	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range %q: expected MM/DD/YYYY-MM/DD/YYYY", value)
	}

	start, err := ParseDate(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := ParseDate(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range %q: end precedes start", value)
	}

	return start, end, nil
}

// isoWeekday reports the ISO-8601 weekday number, where Monday is 1 and
// Sunday is 7.
func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}
