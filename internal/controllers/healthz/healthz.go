package healthz

import (
	"net/http"

	"github.com/budgetcalc/engine/internal/httperror"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Checker reports the health of a dependency.
type Checker func() error

func RegisterRoutes(r *gin.RouterGroup, checks ...Checker) {
	r.OPTIONS("", Options)
	r.GET("", Get(checks...))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(checks ...Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range checks {
			if err := check(); err != nil {
				log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Health check failed")
				c.JSON(http.StatusInternalServerError, httperror.New(err))
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}
