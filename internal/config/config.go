// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/budgetcalc/engine/internal/analytics"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	// HTTP Server
	Port             string
	APIURL           string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Calculation thresholds
	PeriodTrendThreshold     decimal.Decimal
	MultiMonthTrendThreshold decimal.Decimal
	TopMerchantLimit         int
	DefaultTrendMonths       int
	MaxTrendMonths           int
	MerchantAliases          analytics.MerchantAliases

	// Compliance logger
	AMQPURL         string
	AMQPExchange    string
	AMQPQueue       string
	AuditBufferSize int
}

// Load reads an optional .env file in the working directory and then the
// environment. Unparseable numbers fall back to their defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		APIURL:           getEnv("API_URL", "http://localhost:8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",

		PeriodTrendThreshold:     getEnvDecimal("PERIOD_TREND_THRESHOLD", analytics.DefaultPeriodTrendThreshold),
		MultiMonthTrendThreshold: getEnvDecimal("MULTI_MONTH_TREND_THRESHOLD", analytics.DefaultTrendThreshold),
		TopMerchantLimit:         getEnvInt("TOP_MERCHANT_LIMIT", analytics.DefaultTopMerchantLimit),
		DefaultTrendMonths:       getEnvInt("DEFAULT_TREND_MONTHS", 12),
		MaxTrendMonths:           getEnvInt("MAX_TREND_MONTHS", analytics.DefaultMaxTrendMonths),
		MerchantAliases:          parseMerchantAliases(os.Getenv("MERCHANT_ALIASES")),

		AMQPURL:         getEnv("AMQP_URL", ""),
		AMQPExchange:    getEnv("AMQP_EXCHANGE", "budgetcalc"),
		AMQPQueue:       getEnv("AMQP_QUEUE", "compliance_events"),
		AuditBufferSize: getEnvInt("AUDIT_BUFFER_SIZE", 256),
	}
}

// Validate validates the configuration and returns an error listing all problems
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if !c.PeriodTrendThreshold.IsPositive() {
		errors = append(errors, fmt.Sprintf("invalid period trend threshold %s: must be larger than 0", c.PeriodTrendThreshold))
	}

	if !c.MultiMonthTrendThreshold.IsPositive() {
		errors = append(errors, fmt.Sprintf("invalid multi month trend threshold %s: must be larger than 0", c.MultiMonthTrendThreshold))
	}

	if c.TopMerchantLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid top merchant limit %d: must be at least 1", c.TopMerchantLimit))
	}

	if c.MaxTrendMonths < 1 {
		errors = append(errors, fmt.Sprintf("invalid maximum trend months %d: must be at least 1", c.MaxTrendMonths))
	}

	if c.DefaultTrendMonths < 1 || c.DefaultTrendMonths > c.MaxTrendMonths {
		errors = append(errors, fmt.Sprintf("invalid default trend months %d: must be between 1 and %d", c.DefaultTrendMonths, c.MaxTrendMonths))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.AuditBufferSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid audit buffer size %d: must be at least 1", c.AuditBufferSize))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// AnalyticsOptions returns the analytics options for the configuration.
func (c *Config) AnalyticsOptions() analytics.Options {
	return analytics.Options{
		PeriodTrendThreshold: c.PeriodTrendThreshold,
		TrendThreshold:       c.MultiMonthTrendThreshold,
		TopMerchantLimit:     c.TopMerchantLimit,
		MaxTrendMonths:       c.MaxTrendMonths,
		MerchantAliases:      c.MerchantAliases,
	}
}

// parseMerchantAliases parses "pattern=Merchant" pairs separated by ";".
// Malformed pairs are skipped.
func parseMerchantAliases(value string) analytics.MerchantAliases {
	var aliases analytics.MerchantAliases
	for _, pair := range strings.Split(value, ";") {
		match, merchant, ok := strings.Cut(pair, "=")
		match, merchant = strings.TrimSpace(match), strings.TrimSpace(merchant)
		if !ok || match == "" || merchant == "" {
			continue
		}
		aliases = append(aliases, analytics.MerchantAlias{Match: match, Merchant: merchant})
	}
	return aliases
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
