package v1

import (
	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
)

// Snapshot is the data a calculation runs on.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
}

// CalendarOptions select the holiday regime and additional days off.
type CalendarOptions struct {
	Regime        calendar.Regime `json:"regime,omitempty" example:"bank"` // Holiday regime, 'bank' or 'federal'. Defaults to 'bank'
	ExtraHolidays []types.Date    `json:"extraHolidays,omitempty"`         // Additional days that are not business days
}
