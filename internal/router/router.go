package router

import (
	"fmt"
	"net/http"
	"net/url"

	docs "github.com/budgetcalc/engine/api"
	"github.com/budgetcalc/engine/internal/calendar"
	"github.com/budgetcalc/engine/internal/compliance"
	"github.com/budgetcalc/engine/internal/config"
	"github.com/budgetcalc/engine/internal/controllers/healthz"
	v1 "github.com/budgetcalc/engine/internal/controllers/v1"
	"github.com/budgetcalc/engine/internal/engine"
	"github.com/budgetcalc/engine/internal/httperror"
	"github.com/budgetcalc/engine/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/budgetcalc/engine/internal/router.version=..."
var version = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function unregisters the Prometheus metrics and must be called once the
// router is not used anymore.
func Config(url *url.URL, cfg *config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("this HTTP method is not allowed for the endpoint you called"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Use(MetricsMiddleware())
	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Budget Calculation Engine"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "Calculations for a personal budgeting application: holidays and business days, expense reports, period comparisons, trends, budget analyses and goal projections."

	return r, unregisterPrometheusMetrics, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, e *engine.Engine, cfg *config.Config, checks ...healthz.Checker) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	healthz.RegisterRoutes(group.Group("/healthz"), checks...)

	// API v1 setup
	co := v1.Controller{Engine: e}
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	co.RegisterHolidayRoutes(v1Group.Group("/holidays"))
	co.RegisterBusinessDayRoutes(v1Group.Group("/business-days"))
	co.RegisterPayDateRoutes(v1Group.Group("/pay-dates"))
	co.RegisterReportRoutes(v1Group.Group("/reports"))
	co.RegisterComparisonRoutes(v1Group.Group("/comparisons"))
	co.RegisterTrendRoutes(v1Group.Group("/trends"))
	co.RegisterArchiveRoutes(v1Group.Group("/archives"))
	co.RegisterAccountRoutes(v1Group.Group("/accounts"))
	co.RegisterBudgetRoutes(v1Group.Group("/budgets"))
	co.RegisterGoalRoutes(v1Group.Group("/goals"))
}

// collectors returns all Prometheus collectors registered by the router.
func collectors() []prometheus.Collector {
	all := []prometheus.Collector{requestCount, requestDuration}
	all = append(all, calendar.Collectors()...)
	all = append(all, compliance.Collectors()...)
	all = append(all, engine.Collectors()...)
	return all
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit and to set up the router multiple times in tests.
func unregisterPrometheusMetrics() {
	for _, c := range collectors() {
		prometheus.Unregister(c)
	}
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the engine
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Holidays     string `json:"holidays" example:"https://example.com/api/v1/holidays"`          // URL of the holiday list endpoint
	BusinessDays string `json:"businessDays" example:"https://example.com/api/v1/business-days"` // URL of the business day endpoints
	PayDates     string `json:"payDates" example:"https://example.com/api/v1/pay-dates"`         // URL of the pay date endpoints
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports"`            // URL of the expense report endpoint
	Comparisons  string `json:"comparisons" example:"https://example.com/api/v1/comparisons"`    // URL of the period comparison endpoint
	Trends       string `json:"trends" example:"https://example.com/api/v1/trends"`              // URL of the spending trend endpoint
	Archives     string `json:"archives" example:"https://example.com/api/v1/archives"`          // URL of the yearly archive endpoint
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`          // URL of the account endpoints
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`            // URL of the budget endpoints
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`                // URL of the goal endpoints
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Holidays:     url + "/v1/holidays",
			BusinessDays: url + "/v1/business-days",
			PayDates:     url + "/v1/pay-dates",
			Reports:      url + "/v1/reports",
			Comparisons:  url + "/v1/comparisons",
			Trends:       url + "/v1/trends",
			Archives:     url + "/v1/archives",
			Accounts:     url + "/v1/accounts",
			Budgets:      url + "/v1/budgets",
			Goals:        url + "/v1/goals",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
