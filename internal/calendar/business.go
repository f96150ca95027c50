package calendar

import (
	"github.com/budgetcalc/engine/internal/types"
)

// HolidayName returns the name of the holiday whose nominal or observed
// date is d.
func (s *Service) HolidayName(d types.Date, regime Regime) (string, bool) {
	for _, h := range s.table(d.Year(), regime) {
		if h.Date.Equal(d) || h.ObservedDate.Equal(d) {
			return h.Name, true
		}
	}

	// New Year's Day on a Saturday is observed on December 31st of the prior year
	if name, ok := s.observed(d.Year()+1, regime)[d]; ok {
		return name, true
	}

	return "", false
}

// IsHoliday reports whether d is the nominal or observed date of a holiday.
func (s *Service) IsHoliday(d types.Date, regime Regime) bool {
	_, ok := s.HolidayName(d, regime)
	return ok
}

// isObservedHoliday reports whether d is a non-business day because a
// holiday is observed on it or because it is one of the extra holidays.
func (s *Service) isObservedHoliday(d types.Date, regime Regime, extra map[types.Date]struct{}) bool {
	if _, ok := extra[d]; ok {
		return true
	}

	if _, ok := s.observed(d.Year(), regime)[d]; ok {
		return true
	}

	_, ok := s.observed(d.Year()+1, regime)[d]
	return ok
}

// IsBusinessDay reports whether d is neither a weekend day, nor an observed
// holiday in the regime, nor one of the extra holidays.
func (s *Service) IsBusinessDay(d types.Date, regime Regime, extraHolidays ...types.Date) bool {
	return !d.IsWeekend() && !s.isObservedHoliday(d, regime, dateSet(extraHolidays))
}

// AdjustForWeekendAndHoliday moves d back to the closest business day on or
// before it.
//
// A Saturday moves to Friday and a Sunday moves to Friday. While the
// result is an observed holiday of the regime or one of the extra holidays,
// it steps back one calendar day at a time, skipping weekends.
func (s *Service) AdjustForWeekendAndHoliday(d types.Date, regime Regime, extraHolidays ...types.Date) types.Date {
	extra := dateSet(extraHolidays)

	adjusted := PreviousWeekday(d)
	for adjusted.IsWeekend() || s.isObservedHoliday(adjusted, regime, extra) {
		adjusted = adjusted.AddDays(-1)
	}

	return adjusted
}

func dateSet(dates []types.Date) map[types.Date]struct{} {
	set := make(map[types.Date]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}
