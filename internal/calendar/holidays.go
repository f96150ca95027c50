package calendar

import (
	"time"

	"github.com/budgetcalc/engine/internal/types"
	"golang.org/x/exp/slices"
)

// Holiday is one entry of a holiday calendar.
type Holiday struct {
	Name         string     `json:"name" example:"Independence Day"`
	Date         types.Date `json:"date" example:"2026-07-04"`         // The nominal date of the holiday
	ObservedDate types.Date `json:"observedDate" example:"2026-07-03"` // The date the holiday is observed on
	Description  string     `json:"description" example:"July 4th"`
	Restricted   bool       `json:"restricted"` // Only observed by a subset of employees, e.g. Inauguration Day
}

// fixed is a holiday on the same calendar day every year.
func fixed(name string, year int, month time.Month, day int, description string) Holiday {
	d := types.NewDate(year, month, day)
	return Holiday{
		Name:         name,
		Date:         d,
		ObservedDate: ObservedDate(d),
		Description:  description,
	}
}

// floating is a holiday on a specific weekday. It never falls on a weekend,
// so the nominal and the observed date are the same.
func floating(name string, d types.Date, description string) Holiday {
	return Holiday{
		Name:         name,
		Date:         d,
		ObservedDate: d,
		Description:  description,
	}
}

// compute builds the holiday table for the year, sorted by nominal date.
func compute(year int, regime Regime) []Holiday {
	mlk := "Martin Luther King Jr. Day"
	washington := "Washington's Birthday (Presidents' Day)"
	if regime == RegimeFederal {
		mlk = "Birthday of Martin Luther King, Jr."
		washington = "Washington's Birthday"
	}

	holidays := []Holiday{
		fixed("New Year's Day", year, time.January, 1, "January 1st"),
		floating(mlk, NthWeekday(year, time.January, time.Monday, 3), "Third Monday in January"),
		floating(washington, NthWeekday(year, time.February, time.Monday, 3), "Third Monday in February"),
		floating("Memorial Day", LastWeekday(year, time.May, time.Monday), "Last Monday in May"),
		fixed("Juneteenth National Independence Day", year, time.June, 19, "June 19th"),
		fixed("Independence Day", year, time.July, 4, "July 4th"),
		floating("Labor Day", NthWeekday(year, time.September, time.Monday, 1), "First Monday in September"),
		floating("Columbus Day", NthWeekday(year, time.October, time.Monday, 2), "Second Monday in October"),
		fixed("Veterans Day", year, time.November, 11, "November 11th"),
		floating("Thanksgiving Day", NthWeekday(year, time.November, time.Thursday, 4), "Fourth Thursday in November"),
		fixed("Christmas Day", year, time.December, 25, "December 25th"),
	}

	if regime == RegimeFederal && isInaugurationYear(year) {
		inauguration := fixed("Inauguration Day", year, time.January, 20, "January 20th (Federal employees in Washington, D.C. area only)")
		inauguration.Restricted = true
		holidays = append(holidays, inauguration)
	}

	slices.SortStableFunc(holidays, func(a, b Holiday) int {
		return a.Date.Time().Compare(b.Date.Time())
	})

	return holidays
}

// isInaugurationYear reports whether the year follows a presidential election.
func isInaugurationYear(year int) bool {
	// Go's % keeps the sign of the dividend, so normalise for negative years
	return ((year%4)+4)%4 == 1
}
