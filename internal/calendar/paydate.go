package calendar

import (
	"errors"
	"fmt"

	"github.com/budgetcalc/engine/internal/types"
)

// PayFrequency is the interval between two income deposits.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiWeekly    PayFrequency = "bi-weekly"
	PayMonthly     PayFrequency = "monthly"
	PaySemiMonthly PayFrequency = "semi-monthly" // On the 15th and the last day of each month
)

var ErrUnknownPayFrequency = errors.New("the pay frequency must be one of 'weekly', 'bi-weekly', 'monthly', 'semi-monthly'")

// NextPayDate returns the nominal pay date following lastPayDate.
func NextPayDate(frequency PayFrequency, lastPayDate types.Date) (types.Date, error) {
	switch frequency {
	case PayWeekly:
		return lastPayDate.AddDays(7), nil
	case PayBiWeekly:
		return lastPayDate.AddDays(14), nil
	case PayMonthly:
		return lastPayDate.AddMonths(1), nil
	case PaySemiMonthly:
		if lastPayDate.Day() < 15 {
			return types.NewDate(lastPayDate.Year(), lastPayDate.Month(), 15), nil
		}
		if lastPayDate.Day() == 15 {
			return types.MonthOf(lastPayDate).LastDay(), nil
		}
		return types.NewDate(lastPayDate.Year(), lastPayDate.Month()+1, 15), nil
	}

	return types.Date{}, fmt.Errorf("%w, got '%s'", ErrUnknownPayFrequency, frequency)
}

// PayPeriod is the interval between two pay dates.
type PayPeriod struct {
	StartDate       types.Date `json:"startDate" example:"2024-03-01"`       // Day after the last pay date
	EndDate         types.Date `json:"endDate" example:"2024-03-15"`         // The nominal next pay date
	PayDate         types.Date `json:"payDate" example:"2024-03-15"`         // The nominal next pay date
	AdjustedPayDate types.Date `json:"adjustedPayDate" example:"2024-03-15"` // The pay date moved to a business day
}

// NextPayPeriod returns the pay period following lastPayDate, with the pay
// date adjusted to a business day in the regime.
func (s *Service) NextPayPeriod(frequency PayFrequency, lastPayDate types.Date, regime Regime, extraHolidays ...types.Date) (PayPeriod, error) {
	next, err := NextPayDate(frequency, lastPayDate)
	if err != nil {
		return PayPeriod{}, err
	}

	return PayPeriod{
		StartDate:       lastPayDate.AddDays(1),
		EndDate:         next,
		PayDate:         next,
		AdjustedPayDate: s.AdjustForWeekendAndHoliday(next, regime, extraHolidays...),
	}, nil
}

// DaysUntil returns the number of days from today until the date. It is
// negative for dates in the past.
func DaysUntil(today, d types.Date) int {
	return today.DaysUntil(d)
}
