package calendar_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
	}{
		{2024, time.January, time.Monday, 3, "2024-01-15"},
		{2024, time.November, time.Thursday, 4, "2024-11-28"},
		{2025, time.September, time.Monday, 1, "2025-09-01"},
		{2023, time.October, time.Monday, 2, "2023-10-09"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.NthWeekday(tt.year, tt.month, tt.weekday, tt.n).String())
		})
	}
}

// TestNthWeekdayBounds verifies that the n-th weekday is always in
// days [1+7(n-1), 7n] of the month and on the right weekday.
func TestNthWeekdayBounds(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
				for n := 1; n <= 4; n++ {
					d := calendar.NthWeekday(year, month, weekday, n)

					assert.Equal(t, weekday, d.Weekday())
					assert.Equal(t, month, d.Month(), fmt.Sprintf("%d-%d weekday %d n %d", year, month, weekday, n))
					assert.GreaterOrEqual(t, d.Day(), 1+7*(n-1))
					assert.LessOrEqual(t, d.Day(), 7*n)
				}
			}
		}
	}
}

func TestLastWeekday(t *testing.T) {
	assert.Equal(t, "2024-05-27", calendar.LastWeekday(2024, time.May, time.Monday).String())
	assert.Equal(t, "2021-05-31", calendar.LastWeekday(2021, time.May, time.Monday).String())
	assert.Equal(t, "2024-02-29", calendar.LastWeekday(2024, time.February, time.Thursday).String())
}

func TestObservedDate(t *testing.T) {
	// One full week starting on Monday
	start := types.NewDate(2024, 6, 17)
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		observed := calendar.ObservedDate(d)

		switch d.Weekday() {
		case time.Saturday:
			assert.Equal(t, d.AddDays(-1), observed)
		case time.Sunday:
			assert.Equal(t, d.AddDays(1), observed)
		default:
			assert.Equal(t, d, observed)
		}
	}
}

func TestPreviousWeekday(t *testing.T) {
	assert.Equal(t, "2024-03-08", calendar.PreviousWeekday(types.NewDate(2024, 3, 9)).String())
	assert.Equal(t, "2024-03-08", calendar.PreviousWeekday(types.NewDate(2024, 3, 10)).String())
	assert.Equal(t, "2024-03-11", calendar.PreviousWeekday(types.NewDate(2024, 3, 11)).String())
}

func TestParseRegime(t *testing.T) {
	r, err := calendar.ParseRegime("Federal")
	assert.Nil(t, err)
	assert.Equal(t, calendar.RegimeFederal, r)

	r, err = calendar.ParseRegime("")
	assert.Nil(t, err)
	assert.Equal(t, calendar.RegimeBank, r)

	_, err = calendar.ParseRegime("company")
	assert.ErrorIs(t, err, calendar.ErrUnknownRegime)
}
