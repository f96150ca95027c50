package v1

import (
	"encoding/json"
	"net/http"

	"github.com/budgetcalc/engine/internal/budget"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/analyses", co.OptionsBudgetAnalyses)
		r.POST("/analyses", co.CreateBudgetAnalyses)
	}
	{
		r.OPTIONS("/adjustments", co.OptionsBudgetAdjustments)
		r.POST("/adjustments", co.CreateBudgetAdjustment)
	}
}

type BudgetAnalysisRequest struct {
	Snapshot
	Budgets []models.Budget `json:"budgets"`
	Today   types.Date      `json:"today" example:"2024-03-15"` // Reference date for the remaining days. Defaults to today
}

type BudgetAnalysisResponse struct {
	Data []budget.Analysis `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/analyses [options]
func (co Controller) OptionsBudgetAnalyses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Analyze budgets
// @Description	Returns the spend, remaining amount and daily limit for every budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetAnalysisResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			request	body		BudgetAnalysisRequest	true	"Budgets and snapshot"
// @Router			/v1/budgets/analyses [post]
func (co Controller) CreateBudgetAnalyses(c *gin.Context) {
	var request BudgetAnalysisRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	analyses, err := co.Engine.AnalyzeBudgets(request.Budgets, request.Transactions, request.Categories, request.Today)
	if err != nil {
		respondError(c, err)
		return
	}

	if analyses == nil {
		analyses = make([]budget.Analysis, 0)
	}

	c.JSON(http.StatusOK, BudgetAnalysisResponse{Data: analyses})
}

// RawAmount is an amount as entered by the user. It accepts JSON strings
// and numbers and keeps the text for validation.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = RawAmount(s)
		return nil
	}

	*a = RawAmount(data)
	return nil
}

type BudgetAdjustmentRequest struct {
	Budget models.Budget `json:"budget"`
	Amount RawAmount     `json:"amount" swaggertype:"string" example:"450.00"` // The new amount, must be larger than zero
	Reason string        `json:"reason" example:"Rent increase"`               // Defaults to "Manual adjustment"
}

type BudgetAdjustment struct {
	Budget     models.Budget           `json:"budget"`     // The budget with the new amount
	Adjustment models.BudgetAdjustment `json:"adjustment"` // The audit record of the change
}

type BudgetAdjustmentResponse struct {
	Data BudgetAdjustment `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/adjustments [options]
func (co Controller) OptionsBudgetAdjustments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Adjust a budget
// @Description	Changes the amount of a budget and records the adjustment in the compliance log
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetAdjustmentResponse
// @Failure		400		{object}	httperror.Error
// @Param			request	body		BudgetAdjustmentRequest	true	"Budget and new amount"
// @Router			/v1/budgets/adjustments [post]
func (co Controller) CreateBudgetAdjustment(c *gin.Context) {
	var request BudgetAdjustmentRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	adjusted, adjustment, err := co.Engine.AdjustBudget(request.Budget, string(request.Amount), request.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetAdjustmentResponse{
		Data: BudgetAdjustment{
			Budget:     adjusted,
			Adjustment: adjustment,
		},
	})
}
