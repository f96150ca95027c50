package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/budgetcalc/engine/internal/compliance"
	v1 "github.com/budgetcalc/engine/internal/controllers/v1"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/test"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func budgetFor(category uuid.UUID, amount int64, month time.Month) models.Budget {
	m := types.NewMonth(2024, month)
	return models.Budget{
		Model:      models.Model{ID: uuid.New()},
		CategoryID: category,
		Amount:     decimal.NewFromInt(amount),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  m.FirstDay(),
		EndDate:    m.LastDay(),
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetAnalyses() {
	h := newHousehold()
	budgets := []models.Budget{
		budgetFor(h.housing, 1500, time.March),
		budgetFor(h.food, 100, time.March),
		budgetFor(h.food, 100, time.February),
	}

	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/budgets/analyses", v1.BudgetAnalysisRequest{Snapshot: h.Snapshot, Budgets: budgets})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetAnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	housing := response.Data[0]
	suite.Assert().Equal(budgets[0].ID, housing.BudgetID)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(housing.SpentAmount), housing.SpentAmount.String())
	suite.Assert().True(decimal.NewFromInt(300).Equal(housing.RemainingAmount), housing.RemainingAmount.String())
	suite.Assert().True(decimal.NewFromInt(80).Equal(housing.PercentageUsed), housing.PercentageUsed.String())
	suite.Assert().Equal(16, housing.DaysRemaining)
	suite.Assert().True(decimal.RequireFromString("18.75").Equal(housing.DailyLimit), housing.DailyLimit.String())
	suite.Assert().False(housing.IsOverBudget)

	// Subcategory spend counts towards the parent's budget
	food := response.Data[1]
	suite.Assert().True(decimal.NewFromInt(95).Equal(food.SpentAmount), food.SpentAmount.String())

	february := response.Data[2]
	suite.Assert().True(february.IsOverBudget)
	suite.Assert().True(decimal.NewFromInt(-10).Equal(february.RemainingAmount), february.RemainingAmount.String())
	suite.Assert().Equal(0, february.DaysRemaining)
	suite.Assert().True(february.DailyLimit.IsZero())
}

func (suite *TestSuiteStandard) TestCreateBudgetAnalysesErrors() {
	h := newHousehold()

	invalidPeriod := budgetFor(h.housing, 1500, time.March)
	invalidPeriod.Period = "yearly"

	tests := []struct {
		name   string
		budget models.Budget
		status int
	}{
		{"Unknown category", budgetFor(uuid.New(), 100, time.March), http.StatusNotFound},
		{"Invalid period kind", invalidPeriod, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, nil, http.MethodPost, "http://example.com/v1/budgets/analyses", v1.BudgetAnalysisRequest{Snapshot: h.Snapshot, Budgets: []models.Budget{tt.budget}})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetAdjustment() {
	b := budgetFor(uuid.New(), 400, time.March)

	tests := []struct {
		name   string
		body   any
		status int
		amount decimal.Decimal
		reason string
	}{
		{"String amount", v1.BudgetAdjustmentRequest{Budget: b, Amount: "450.00", Reason: "Rent increase"}, http.StatusOK, decimal.NewFromInt(450), "Rent increase"},
		{"Number amount", map[string]any{"budget": b, "amount": 425.5}, http.StatusOK, decimal.RequireFromString("425.5"), "Manual adjustment"},
		{"Not a number", v1.BudgetAdjustmentRequest{Budget: b, Amount: "four hundred"}, http.StatusBadRequest, decimal.Zero, ""},
		{"Zero", v1.BudgetAdjustmentRequest{Budget: b, Amount: "0"}, http.StatusBadRequest, decimal.Zero, ""},
		{"Negative", v1.BudgetAdjustmentRequest{Budget: b, Amount: "-5"}, http.StatusBadRequest, decimal.Zero, ""},
		{"Missing", v1.BudgetAdjustmentRequest{Budget: b}, http.StatusBadRequest, decimal.Zero, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder compliance.Recorder

			r := test.Request(t, &recorder, http.MethodPost, "http://example.com/v1/budgets/adjustments", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				assert.Len(t, recorder.Events(), 0, "Rejected adjustments must not be logged")
				return
			}

			var response v1.BudgetAdjustmentResponse
			test.DecodeResponse(t, &r, &response)

			assert.True(t, tt.amount.Equal(response.Data.Budget.Amount), response.Data.Budget.Amount.String())
			assert.True(t, decimal.NewFromInt(400).Equal(response.Data.Adjustment.OldAmount))
			assert.Equal(t, tt.reason, response.Data.Adjustment.Reason)
			assert.Equal(t, "User", response.Data.Adjustment.AdjustedBy)
			assert.Equal(t, test.Now, response.Data.Adjustment.Timestamp)

			events := recorder.Events()
			if assert.Len(t, events, 1) {
				assert.Equal(t, compliance.EventBudgetAdjustment, events[0].Kind)
				assert.Equal(t, response.Data.Adjustment.ID, events[0].Adjustment.ID)
			}
		})
	}
}
