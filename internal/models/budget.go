package models

import (
	"time"

	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodPayPeriod BudgetPeriod = "pay-period"
)

func (p BudgetPeriod) Valid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodPayPeriod
}

// Budget is a spending limit for a category over a period.
type Budget struct {
	Model
	Name       string          `json:"name" example:"Groceries March"`
	CategoryID uuid.UUID       `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	Amount     decimal.Decimal `json:"amount" example:"450"`
	Period     BudgetPeriod    `json:"period" example:"monthly"`
	StartDate  types.Date      `json:"startDate" example:"2024-03-01"`
	EndDate    types.Date      `json:"endDate" example:"2024-03-31"`
}

// Range returns the inclusive date range the budget covers.
func (b Budget) Range() types.Range {
	return types.NewRange(b.StartDate, b.EndDate)
}

// Validate checks the period kind and the date range.
func (b Budget) Validate() error {
	if !b.Period.Valid() {
		return ErrInvalidPeriodKind
	}

	if !b.Range().Valid() {
		return ErrInvalidDateRange
	}

	return nil
}

// BudgetAdjustment is the audit record for a change of a budget's amount.
type BudgetAdjustment struct {
	ID         uuid.UUID       `json:"id" example:"c0ef3d2b-5fd9-4b64-9f2b-1f1f4f3b2c7a"`
	BudgetID   uuid.UUID       `json:"budgetId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	OldAmount  decimal.Decimal `json:"oldAmount" example:"400"`
	NewAmount  decimal.Decimal `json:"newAmount" example:"450"`
	Reason     string          `json:"reason" example:"Manual adjustment"`
	AdjustedBy string          `json:"adjustedBy" example:"User"`
	Timestamp  time.Time       `json:"timestamp" example:"2024-03-14T09:26:53Z"`
}
