// Package timeframe converts displayed time-bucket labels back into the
// concrete date ranges the backend's detail endpoints understand.
//
// Labels come in two shapes: "2024-W07" (week) and "2024-07" (month).
// All calendar math is done in UTC; resolved boundaries are calendar dates
// with no time-of-day component.
package timeframe

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// ErrBadLabel is returned for labels matching neither accepted shape.
// Callers must not attempt a fetch when resolution fails.
var ErrBadLabel = errors.New("unrecognized bucket label")

var (
	weekLabelRe  = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)
	monthLabelRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

// Range is an inclusive [Start, End] pair of UTC calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// StartDate formats the range start as YYYY-MM-DD.
func (r Range) StartDate() string { return r.Start.Format("2006-01-02") }

// EndDate formats the range end as YYYY-MM-DD.
func (r Range) EndDate() string { return r.End.Format("2006-01-02") }

// Resolve converts a week or month label into its date range.
func Resolve(label string) (Range, error) {
	if m := weekLabelRe.FindStringSubmatch(label); m != nil {
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		return resolveWeek(year, week)
	}
	if m := monthLabelRe.FindStringSubmatch(label); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return resolveMonth(year, month)
	}
	return Range{}, ErrBadLabel
}

// resolveWeek finds the Monday..Sunday span of the given week. It starts
// from the reference day "Jan 1 + 7*(week-1)" and shifts back to that
// week's Monday, which is how the backend labels its weekly buckets.
func resolveWeek(year, week int) (Range, error) {
	if week < 1 || week > 53 {
		return Range{}, ErrBadLabel
	}

	ref := time.Date(year, time.January, 1+7*(week-1), 0, 0, 0, 0, time.UTC)

	// Days since Monday, with Sunday wrapping to 6.
	back := (int(ref.Weekday()) - int(time.Monday) + 7) % 7
	monday := ref.AddDate(0, 0, -back)

	return Range{Start: monday, End: monday.AddDate(0, 0, 6)}, nil
}

// resolveMonth spans the first through last day of the month. The end is
// day 0 of the following month, which time.Date normalizes to the last
// day regardless of month length or leap years.
func resolveMonth(year, month int) (Range, error) {
	if month < 1 || month > 12 {
		return Range{}, ErrBadLabel
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return Range{Start: start, End: end}, nil
}
