package analytics

import (
	"fmt"
	"strings"

	"github.com/budgetcalc/engine/internal/types"
)

type Period string

const (
	PeriodWeek     Period = "week"
	PeriodTwoWeeks Period = "two-weeks"
	PeriodMonth    Period = "month"
	PeriodQuarter  Period = "quarter"
	PeriodYear     Period = "year"
	PeriodYTD      Period = "ytd"
	PeriodCustom   Period = "custom"
)

// ParsePeriod parses a period name, case-insensitive.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PeriodWeek, PeriodTwoWeeks, PeriodMonth, PeriodQuarter, PeriodYear, PeriodYTD, PeriodCustom:
		return p, nil
	}
	return "", fmt.Errorf("%w, got '%s'", ErrUnknownPeriod, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DateRangeForPeriod returns the period that contains base.
//
// Weeks start on Sunday. A two-week period is the week containing base and
// the week before it. Year to date ends on base. Custom periods fall back to
// the month containing base.
func DateRangeForPeriod(p Period, base types.Date) types.Range {
	switch p {
	case PeriodWeek:
		start := startOfWeek(base)
		return types.NewRange(start, start.AddDays(6))
	case PeriodTwoWeeks:
		start := startOfWeek(base)
		return types.NewRange(start.AddDays(-7), start.AddDays(6))
	case PeriodQuarter:
		first := types.NewMonth(base.Year(), base.Month()-(base.Month()-1)%3)
		return types.NewRange(first.FirstDay(), first.AddDate(0, 2).LastDay())
	case PeriodYear:
		return types.NewRange(types.NewDate(base.Year(), 1, 1), types.NewDate(base.Year(), 12, 31))
	case PeriodYTD:
		return types.NewRange(types.NewDate(base.Year(), 1, 1), base)
	default:
		month := types.MonthOf(base)
		return types.NewRange(month.FirstDay(), month.LastDay())
	}
}

// PreviousPeriod returns the period immediately before r.
//
// Calendar periods are shifted by their length. When r ends on the last day
// of a month, the shifted range does as well. Custom ranges are shifted by
// their own number of days.
func PreviousPeriod(p Period, r types.Range) types.Range {
	switch p {
	case PeriodWeek:
		return types.NewRange(r.Start.AddDays(-7), r.End.AddDays(-7))
	case PeriodTwoWeeks:
		return types.NewRange(r.Start.AddDays(-14), r.End.AddDays(-14))
	case PeriodMonth:
		return shiftMonths(r, -1)
	case PeriodQuarter:
		return shiftMonths(r, -3)
	case PeriodYear, PeriodYTD:
		return shiftMonths(r, -12)
	default:
		days := r.Days()
		return types.NewRange(r.Start.AddDays(-days), r.End.AddDays(-days))
	}
}

func startOfWeek(d types.Date) types.Date {
	return d.AddDays(-int(d.Weekday()))
}

func shiftMonths(r types.Range, months int) types.Range {
	end := r.End.AddMonths(months)
	if r.End.Equal(types.MonthOf(r.End).LastDay()) {
		end = types.MonthOf(end).LastDay()
	}
	return types.NewRange(r.Start.AddMonths(months), end)
}
