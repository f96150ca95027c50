package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/budgetcalc/engine/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	url, _ := url.Parse("https://budget.example.com:8081/api/")

	r.GET("/", func(ctx *gin.Context) {
		router.URLMiddleware(url)(c)
		c.String(http.StatusOK, c.GetString(string(httputil.ContextURL)))
	})

	// Make and decode response
	c.Request, _ = http.NewRequest(http.MethodGet, "https://budget.example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://budget.example.com:8081/api", w.Body.String())
}
