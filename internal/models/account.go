package models

import (
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// Account is a bank account as delivered by the Bank Connector.
type Account struct {
	Model
	Name            string           `json:"name" example:"Everyday Checking"`
	Type            AccountType      `json:"type" example:"checking"`
	Balance         decimal.Decimal  `json:"balance" example:"2417.33"`                  // Current balance including pending transactions
	PendingBalance  decimal.Decimal  `json:"pendingBalance" example:"2389.10"`           // Balance without pending transactions
	InstitutionName string           `json:"institutionName" example:"First Federal Bank"` // Name of the bank
	MaskedNumber    string           `json:"maskedNumber" example:"****4321"`
	CreditLimit     *decimal.Decimal `json:"creditLimit,omitempty" example:"5000"` // Only set for credit accounts
}

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit:
		return true
	}
	return false
}

// Validate checks the account type.
func (a Account) Validate() error {
	if !a.Type.Valid() {
		return ErrInvalidAccountType
	}
	return nil
}
