package calendar

import (
	"time"

	"github.com/budgetcalc/engine/internal/types"
)

// NthWeekday returns the n-th occurrence of weekday in the month.
//
// The first occurrence is on day 1 + ((weekday - w0 + 7) mod 7) where w0
// is the weekday of the first of the month. Every further occurrence is
// seven days later.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) types.Date {
	w0 := types.NewDate(year, month, 1).Weekday()
	first := 1 + (int(weekday)-int(w0)+7)%7
	return types.NewDate(year, month, first+7*(n-1))
}

// LastWeekday returns the last occurrence of weekday in the month.
func LastWeekday(year int, month time.Month, weekday time.Weekday) types.Date {
	last := types.NewDate(year, month+1, 0)
	back := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDays(-back)
}

// ObservedDate moves a holiday that falls on a weekend to the nearest
// weekday: Saturday to the Friday before, Sunday to the Monday after.
func ObservedDate(d types.Date) types.Date {
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDays(1)
	case time.Saturday:
		return d.AddDays(-1)
	}
	return d
}

// PreviousWeekday moves a weekend date back to the Friday before it.
// Weekdays are returned unchanged.
//
// Note that this differs from ObservedDate: a pay date on a Sunday is paid
// early on Friday, while a holiday on a Sunday is observed on Monday.
func PreviousWeekday(d types.Date) types.Date {
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDays(-2)
	case time.Saturday:
		return d.AddDays(-1)
	}
	return d
}
