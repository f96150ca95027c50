package v1_test

import (
	"net/http"

	v1 "github.com/budgetcalc/engine/internal/controllers/v1"
	"github.com/budgetcalc/engine/internal/goal"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/test"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func savingsGoal(target, current, contribution int64, frequency models.ContributionFrequency) models.Goal {
	return models.Goal{
		Model:                 models.Model{ID: uuid.New()},
		Name:                  "Emergency fund",
		TargetAmount:          decimal.NewFromInt(target),
		CurrentAmount:         decimal.NewFromInt(current),
		ContributionAmount:    decimal.NewFromInt(contribution),
		ContributionFrequency: frequency,
	}
}

func (suite *TestSuiteStandard) TestCreateGoalProjections() {
	goals := []models.Goal{
		savingsGoal(10000, 5000, 200, models.ContributionMonthly),
		savingsGoal(1000, 0, 0, models.ContributionWeekly),
		savingsGoal(1000, 1200, 50, models.ContributionBiWeekly),
	}

	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/goals/projections", v1.GoalProjectionRequest{Goals: goals})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalProjectionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	monthly := response.Data[0]
	suite.Assert().Equal(goals[0].ID, monthly.GoalID)
	suite.Assert().True(decimal.NewFromInt(50).Equal(monthly.PercentageComplete), monthly.PercentageComplete.String())
	suite.Require().NotNil(monthly.MonthsRemaining)
	suite.Assert().Equal(25, *monthly.MonthsRemaining)
	suite.Assert().Equal(types.NewDate(2026, 4, 15), *monthly.EstimatedCompletionDate)

	undefined := response.Data[1]
	suite.Assert().True(undefined.Undefined)
	suite.Assert().Nil(undefined.MonthsRemaining)
	suite.Assert().Nil(undefined.EstimatedCompletionDate)

	met := response.Data[2]
	suite.Require().NotNil(met.MonthsRemaining)
	suite.Assert().Equal(0, *met.MonthsRemaining)
	suite.Assert().Equal(types.DateOf(test.Now), *met.EstimatedCompletionDate)
}

func (suite *TestSuiteStandard) TestCreateGoalProjectionsErrors() {
	r := test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/goals/projections", v1.GoalProjectionRequest{
		Goals: []models.Goal{savingsGoal(1000, 0, 10, "daily")},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), nil, http.MethodPost, "http://example.com/v1/goals/projections", v1.GoalProjectionRequest{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalProjectionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]goal.Projection{}, response.Data)
}
