// Package daterange parses and validates the start/end date parameters shared
// by the reporting endpoints, and partitions ranges into calendar months.
package daterange

import (
	"time"

	"github.com/jinzhu/now"

	domainerrors "manor/internal/domain/errors"
)

// Layout is the wire format for date parameters.
const Layout = "2006-01-02"

// Range is an inclusive [Start, End] date window.
type Range struct {
	Start time.Time
	End   time.Time
}

// Parse validates and parses required start and end date strings.
// Missing values, malformed dates and inverted ranges each surface a
// distinct application error.
func Parse(startStr, endStr string) (Range, error) {
	if startStr == "" {
		return Range{}, domainerrors.ErrMissingParameter.WithDetails("start_date is required")
	}
	if endStr == "" {
		return Range{}, domainerrors.ErrMissingParameter.WithDetails("end_date is required")
	}

	start, err := time.Parse(Layout, startStr)
	if err != nil {
		return Range{}, domainerrors.ErrInvalidDateFormat.WithDetails("start_date: " + startStr)
	}

	end, err := time.Parse(Layout, endStr)
	if err != nil {
		return Range{}, domainerrors.ErrInvalidDateFormat.WithDetails("end_date: " + endStr)
	}

	if start.After(end) {
		return Range{}, domainerrors.ErrInvalidDateRange
	}

	return Range{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the range, boundaries included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// WeeklyPoints returns date points spaced exactly 7 days apart starting at
// Start, with the last point not after End.
func (r Range) WeeklyPoints() []time.Time {
	var points []time.Time
	for point := r.Start; !point.After(r.End); point = point.AddDate(0, 0, 7) {
		points = append(points, point)
	}

	return points
}

// Month is one calendar-month slice of a range. Start and End are clipped to
// the enclosing range, so the first and last slices may be partial months.
type Month struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// Label formats the month for report output, e.g. "January 2025".
func (m Month) Label() string {
	return m.Start.Format("January 2006")
}

// Months partitions the range into calendar months.
func (r Range) Months() []Month {
	var months []Month

	cursor := r.Start
	for !cursor.After(r.End) {
		monthEnd := now.New(cursor).EndOfMonth()
		end := monthEnd
		if end.After(r.End) {
			end = r.End
		}

		months = append(months, Month{
			Year:  cursor.Year(),
			Month: cursor.Month(),
			Start: cursor,
			End:   end,
		})

		cursor = now.New(cursor).BeginningOfMonth().AddDate(0, 1, 0)
	}

	return months
}
