package analytics_test

import (
	"errors"
	"testing"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDateRangeForPeriod(t *testing.T) {
	tests := []struct {
		period     analytics.Period
		base       string
		start, end string
	}{
		{analytics.PeriodWeek, "2024-03-13", "2024-03-10", "2024-03-16"},
		{analytics.PeriodWeek, "2024-03-10", "2024-03-10", "2024-03-16"},
		{analytics.PeriodTwoWeeks, "2024-03-13", "2024-03-03", "2024-03-16"},
		{analytics.PeriodMonth, "2024-02-17", "2024-02-01", "2024-02-29"},
		{analytics.PeriodQuarter, "2024-05-20", "2024-04-01", "2024-06-30"},
		{analytics.PeriodQuarter, "2024-12-31", "2024-10-01", "2024-12-31"},
		{analytics.PeriodYear, "2024-05-20", "2024-01-01", "2024-12-31"},
		{analytics.PeriodYTD, "2024-05-20", "2024-01-01", "2024-05-20"},
		{analytics.PeriodCustom, "2024-05-20", "2024-05-01", "2024-05-31"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period)+" "+tt.base, func(t *testing.T) {
			r := analytics.DateRangeForPeriod(tt.period, d(tt.base))
			assert.Equal(t, tt.start, r.Start.String())
			assert.Equal(t, tt.end, r.End.String())
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		period             analytics.Period
		start, end         string
		prevStart, prevEnd string
	}{
		{analytics.PeriodWeek, "2024-03-10", "2024-03-16", "2024-03-03", "2024-03-09"},
		{analytics.PeriodTwoWeeks, "2024-03-03", "2024-03-16", "2024-02-18", "2024-03-02"},
		{analytics.PeriodMonth, "2024-03-01", "2024-03-31", "2024-02-01", "2024-02-29"},
		{analytics.PeriodMonth, "2024-02-01", "2024-02-29", "2024-01-01", "2024-01-31"},
		{analytics.PeriodQuarter, "2024-04-01", "2024-06-30", "2024-01-01", "2024-03-31"},
		{analytics.PeriodYear, "2024-01-01", "2024-12-31", "2023-01-01", "2023-12-31"},
		{analytics.PeriodYTD, "2024-01-01", "2024-02-29", "2023-01-01", "2023-02-28"},
		{analytics.PeriodYTD, "2024-01-01", "2024-05-20", "2023-01-01", "2023-05-20"},
		{analytics.PeriodCustom, "2024-03-10", "2024-03-16", "2024-03-03", "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period)+" "+tt.start, func(t *testing.T) {
			r := analytics.PreviousPeriod(tt.period, types.NewRange(d(tt.start), d(tt.end)))
			assert.Equal(t, tt.prevStart, r.Start.String())
			assert.Equal(t, tt.prevEnd, r.End.String())
			assert.False(t, r.Overlaps(types.NewRange(d(tt.start), d(tt.end))))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := analytics.ParsePeriod(" Two-Weeks")
	assert.Nil(t, err)
	assert.Equal(t, analytics.PeriodTwoWeeks, p)

	_, err = analytics.ParsePeriod("fortnight")
	assert.True(t, errors.Is(err, analytics.ErrUnknownPeriod), "Got %v", err)
}
