// Package types implements calendar value types for the engine.
//
// All values are timezone-naive calendar days. They are stored as
// time.Time at 00:00 UTC so that arithmetic never crosses a DST boundary.
package types

import (
	"strings"
	"time"
)

// Date is a calendar day without a time of day or a location.
type Date time.Time

// NewDate returns the Date for year, month and day. Out of range values
// are normalised the same way time.Date does it.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day a time falls on in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a date in "2006-01-02" format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on error. It is meant for
// fixed dates in tests and tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as time.Time at 00:00 UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Year returns the year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the month of the date.
func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// IsWeekend reports whether the date is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	w := d.Weekday()
	return w == time.Saturday || w == time.Sunday
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds n calendar days.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// AddMonths adds n months. If the day does not exist in the target month,
// the result is clamped to the last day of that month, so Jan 31 + 1
// month is Feb 28 (or 29).
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.Year(), d.Month()+time.Month(n), 1)
	last := NewDate(first.Year(), first.Month()+1, 0)
	if d.Day() > last.Day() {
		return last
	}
	return NewDate(first.Year(), first.Month(), d.Day())
}

// AddYears adds n years, clamping Feb 29 to Feb 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

const secondsPerDay = 24 * 60 * 60

// DaysUntil returns the signed number of calendar days from d to e.
func (d Date) DaysUntil(e Date) int {
	return int((time.Time(e).Unix() - time.Time(d).Unix()) / secondsPerDay)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same calendar day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

// Format formats the date with a time.Format layout.
func (d Date) Format(layout string) string {
	return time.Time(d).Format(layout)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both "2006-01-02" and RFC3339 strings are accepted. For RFC3339 values,
// the calendar day in the value's own offset is used.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	layout := time.RFC3339
	if fullDatePattern.MatchString(value) {
		layout = time.DateOnly
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam parses query and URI parameters for gin binding.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range is an inclusive range of calendar days.
type Range struct {
	Start Date `json:"start" example:"2024-01-01"` // First day of the range
	End   Date `json:"end" example:"2024-01-31"`   // Last day of the range, inclusive
}

// NewRange returns the range [start, end].
func NewRange(start, end Date) Range {
	return Range{Start: start, End: end}
}

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Contains reports whether d is within the range, both ends included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the two ranges share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !r.End.Before(o.Start) && !o.End.Before(r.Start)
}

// Days returns the number of days in the range.
func (r Range) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}
