package analytics_test

import (
	"testing"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture is a small household with a food category split into groceries and
// dining, and a housing category without children.
type fixture struct {
	food, groceries, dining, housing uuid.UUID
	categories                       []models.Category
	transactions                     []models.Transaction
}

func newFixture() fixture {
	f := fixture{
		food:      uuid.New(),
		groceries: uuid.New(),
		dining:    uuid.New(),
		housing:   uuid.New(),
	}

	f.categories = []models.Category{
		{Model: models.Model{ID: f.food}, Name: "Food"},
		{Model: models.Model{ID: f.groceries}, Name: "Groceries", ParentID: &f.food},
		{Model: models.Model{ID: f.dining}, Name: "Dining", ParentID: &f.food},
		{Model: models.Model{ID: f.housing}, Name: "Housing"},
	}

	f.transactions = []models.Transaction{
		transaction("-100", "2024-01-10", &f.groceries, "Corner Grocery"),
		transaction("-50", "2024-02-05", &f.groceries, ""),
		transaction("-30", "2024-02-14", &f.dining, "Pizza Place"),
		transaction("-20", "2024-03-01", &f.food, "Corner Grocery"),
		transaction("-1200", "2024-01-01", &f.housing, "Landlord"),
		transaction("-1200", "2024-02-01", &f.housing, "Landlord"),
		transaction("-1200", "2024-03-01", &f.housing, "Landlord"),
		transaction("3000", "2024-01-31", nil, "Employer"),
		transaction("-15", "2024-02-20", nil, "Kiosk"),
	}

	return f
}

func (f fixture) snapshot(t *testing.T) *analytics.Snapshot {
	s, err := analytics.NewSnapshot(f.transactions, f.categories)
	require.Nil(t, err)
	return s
}

func (f fixture) tree(t *testing.T) *models.CategoryTree {
	tree, err := models.NewCategoryTree(f.categories)
	require.Nil(t, err)
	return tree
}

func transaction(amount, date string, category *uuid.UUID, merchant string) models.Transaction {
	return models.Transaction{
		Model:      models.Model{ID: uuid.New()},
		AccountID:  uuid.New(),
		Amount:     decimal.RequireFromString(amount),
		Date:       types.MustParseDate(date),
		CategoryID: category,
		Status:     models.TransactionStatusCleared,
		Merchant:   merchant,
	}
}

func d(s string) types.Date {
	return types.MustParseDate(s)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func firstQuarter() types.Range {
	return types.NewRange(d("2024-01-01"), d("2024-03-31"))
}
