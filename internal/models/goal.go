package models

import (
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContributionFrequency string

const (
	ContributionWeekly    ContributionFrequency = "weekly"
	ContributionBiWeekly  ContributionFrequency = "bi-weekly"
	ContributionMonthly   ContributionFrequency = "monthly"
	ContributionPayPeriod ContributionFrequency = "pay-period"
)

func (f ContributionFrequency) Valid() bool {
	switch f {
	case ContributionWeekly, ContributionBiWeekly, ContributionMonthly, ContributionPayPeriod:
		return true
	}
	return false
}

// Goal is a savings target funded by regular contributions.
type Goal struct {
	Model
	Name                  string                `json:"name" example:"Emergency fund"`
	CategoryID            uuid.UUID             `json:"categoryId" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	TargetAmount          decimal.Decimal       `json:"targetAmount" example:"10000"`
	CurrentAmount         decimal.Decimal       `json:"currentAmount" example:"5000"`
	TargetDate            types.Date            `json:"targetDate" example:"2026-12-31"`
	ContributionAmount    decimal.Decimal       `json:"contributionAmount" example:"200"`
	ContributionFrequency ContributionFrequency `json:"contributionFrequency" example:"monthly"`
}

// Validate checks the contribution frequency.
func (g Goal) Validate() error {
	if !g.ContributionFrequency.Valid() {
		return ErrInvalidFrequency
	}
	return nil
}
