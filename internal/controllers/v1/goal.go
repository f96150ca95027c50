package v1

import (
	"net/http"

	"github.com/budgetcalc/engine/internal/goal"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/projections", co.OptionsGoalProjections)
	r.POST("/projections", co.CreateGoalProjections)
}

type GoalProjectionRequest struct {
	Goals []models.Goal `json:"goals"`
	AsOf  types.Date    `json:"asOf" example:"2024-03-15"` // Reference date for the completion dates. Defaults to today
}

type GoalProjectionResponse struct {
	Data []goal.Projection `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals/projections [options]
func (co Controller) OptionsGoalProjections(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Project goals
// @Description	Returns when each goal will be reached with its current contributions
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalProjectionResponse
// @Failure		400		{object}	httperror.Error
// @Param			request	body		GoalProjectionRequest	true	"Goals"
// @Router			/v1/goals/projections [post]
func (co Controller) CreateGoalProjections(c *gin.Context) {
	var request GoalProjectionRequest
	if err := httputil.BindData(c, &request); err != nil {
		respondError(c, err)
		return
	}

	projections, err := co.Engine.ProjectGoals(request.Goals, request.AsOf)
	if err != nil {
		respondError(c, err)
		return
	}

	if projections == nil {
		projections = make([]goal.Projection, 0)
	}

	c.JSON(http.StatusOK, GoalProjectionResponse{Data: projections})
}
