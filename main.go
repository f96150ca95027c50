package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budgetcalc/engine/internal/compliance"
	"github.com/budgetcalc/engine/internal/config"
	"github.com/budgetcalc/engine/internal/controllers/healthz"
	"github.com/budgetcalc/engine/internal/engine"
	"github.com/budgetcalc/engine/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	sinks := []compliance.Sink{compliance.LogSink{Logger: log.Logger}}
	var amqpSink *compliance.AMQPSink
	if cfg.AMQPURL != "" {
		s, err := compliance.NewAMQPSink(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to the compliance broker")
		}
		amqpSink = s
		sinks = append(sinks, s)
	}
	dispatcher := compliance.NewDispatcher(log.Logger, cfg.AuditBufferSize, sinks...)

	e := engine.New(
		engine.WithLogger(log.Logger),
		engine.WithComplianceLogger(dispatcher),
		engine.WithAnalyticsOptions(cfg.AnalyticsOptions()),
		engine.WithDefaultTrendMonths(cfg.DefaultTrendMonths),
	)

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"), e, cfg, healthz.Checker(dispatcher.Healthy))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Pending compliance events are flushed before the broker connection goes away
	dispatcher.Close()
	if amqpSink != nil {
		if err := amqpSink.Close(); err != nil {
			log.Error().Err(err).Msg("closing the compliance broker connection")
		}
	}
}
