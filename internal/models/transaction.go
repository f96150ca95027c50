package models

import (
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusCleared TransactionStatus = "cleared"
)

// Transaction is a single booking on an account.
//
// Negative amounts are expenses, positive amounts are income or credits.
type Transaction struct {
	Model
	AccountID   uuid.UUID         `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Amount      decimal.Decimal   `json:"amount" example:"-14.99"`
	Description string            `json:"description" example:"Monthly streaming subscription"`
	Date        types.Date        `json:"date" example:"2024-03-01"`
	CategoryID  *uuid.UUID        `json:"categoryId,omitempty" example:"5b2e3d0c-88d0-4b4e-b8a4-52b0e0a33a7e"`
	Status      TransactionStatus `json:"status" example:"cleared"`
	Merchant    string            `json:"merchant,omitempty" example:"Streamflix"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Spent returns the absolute amount of an expense and zero for income.
func (t Transaction) Spent() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Abs()
}

// InCategory reports whether the transaction is tagged with the category.
func (t Transaction) InCategory(id uuid.UUID) bool {
	return t.CategoryID != nil && *t.CategoryID == id
}
