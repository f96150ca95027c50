package analytics

import (
	"fmt"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountAvailability is the money available on a single account.
type AccountAvailability struct {
	AccountID uuid.UUID          `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Name      string             `json:"name" example:"Everyday Checking"`
	Type      models.AccountType `json:"type" example:"checking"`
	Balance   decimal.Decimal    `json:"balance" example:"2417.33"`
	Available decimal.Decimal    `json:"available" example:"2389.10"` // Credit limit plus balance for credit accounts, pending balance otherwise
}

// AccountSummary is the aggregate position over all accounts.
type AccountSummary struct {
	TotalBalance        decimal.Decimal       `json:"totalBalance" example:"16217.33"`
	TotalPendingCharges decimal.Decimal       `json:"totalPendingCharges" example:"48.20"` // Pending charges on credit accounts
	NetAvailableFunds   decimal.Decimal       `json:"netAvailableFunds" example:"16169.13"`
	Accounts            []AccountAvailability `json:"accounts"`
}

// SummarizeAccounts aggregates the balances of the accounts.
func SummarizeAccounts(accounts []models.Account) (AccountSummary, error) {
	summary := AccountSummary{
		TotalBalance:        decimal.Zero,
		TotalPendingCharges: decimal.Zero,
		Accounts:            make([]AccountAvailability, 0, len(accounts)),
	}

	for _, account := range accounts {
		if err := account.Validate(); err != nil {
			return AccountSummary{}, fmt.Errorf("account %s: %w", account.ID, err)
		}

		summary.TotalBalance = summary.TotalBalance.Add(account.Balance)

		available := account.PendingBalance
		if account.Type == models.AccountTypeCredit {
			summary.TotalPendingCharges = summary.TotalPendingCharges.Add(account.PendingBalance.Sub(account.Balance).Abs())

			available = account.Balance
			if account.CreditLimit != nil {
				available = account.CreditLimit.Add(account.Balance)
			}
		}

		summary.Accounts = append(summary.Accounts, AccountAvailability{
			AccountID: account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   account.Balance,
			Available: available,
		})
	}

	summary.NetAvailableFunds = summary.TotalBalance.Sub(summary.TotalPendingCharges)
	return summary, nil
}
