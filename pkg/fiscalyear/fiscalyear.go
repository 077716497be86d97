package fiscalyear

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// An Indian fiscal year runs 1 April to 31 March and is written
// "2024-25": the calendar year it starts in, then the two-digit year it
// ends in.

var yearPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Year is a parsed fiscal year.
type Year struct {
	Start int // calendar year containing 1 April
}

// Parse validates and parses a fiscal-year string such as "2024-25".
func Parse(s string) (Year, error) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return Year{}, fmt.Errorf("fiscal year %q: want format YYYY-YY", s)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return Year{}, fmt.Errorf("fiscal year %q: end year does not follow start year", s)
	}
	return Year{Start: start}, nil
}

// String renders the canonical "YYYY-YY" form.
func (y Year) String() string {
	return fmt.Sprintf("%04d-%02d", y.Start, (y.Start+1)%100)
}

// Begin returns 1 April of the start year.
func (y Year) Begin() time.Time {
	return time.Date(y.Start, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End returns 31 March of the following year.
func (y Year) End() time.Time {
	return time.Date(y.Start+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether a date falls inside the fiscal year.
func (y Year) Contains(t time.Time) bool {
	return !t.Before(y.Begin()) && !t.After(y.End())
}

// WithinWindow reports whether a date falls inside a closed [start, end]
// window. Used for date-gated deductions such as EV-loan interest.
func WithinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// YearsSince counts whole fiscal years elapsed from a start fiscal year to
// this one. Negative when the start year is in the future.
func (y Year) YearsSince(startYear int) int {
	return y.Start - startYear
}
