// Package config handles configuration for the server component: defaults,
// .env files and environment variables, an optional JSON file and finally
// command-line flags, each layer overriding the previous one.
package config

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/server/generation"
)

// Config holds runtime settings for the SocialScribe server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - APIPrefix: path prefix of the post routes ("/api").
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - GeminiAPIKey: credential for the generation API. Required.
//   - GenerationModels: candidate models, tried in order.
//   - AllowedOrigins: CORS allow-list.
//   - S3*: archive bucket for approved posts; archiving is off when S3Bucket is empty.
type Config struct {
	EndpointAddrHTTP string
	APIPrefix        string
	DatabaseDSN      string
	GeminiAPIKey     string
	GenerationModels []string
	AllowedOrigins   []string
	ShutdownTimeout  time.Duration
	LogLevel         string
	S3AccessKey      string
	S3SecretKey      string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with development defaults. The database DSN
// and the API key have no default.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.APIPrefix = "/api"
	c.GenerationModels = append([]string(nil), generation.DefaultModels...)
	c.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
}

// ArchiveEnabled reports whether approved posts should be copied to S3.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// Validate fails when a setting the server cannot start without is missing.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set (DATABASE_DSN or -d)"))
	}
	if c.GeminiAPIKey == "" {
		errs = append(errs, errors.New("generation API key is not set (GEMINI_API_KEY or -k)"))
	}
	if len(c.GenerationModels) == 0 {
		errs = append(errs, errors.New("no generation models configured"))
	}
	if c.APIPrefix == "" || c.APIPrefix[0] != '/' {
		errs = append(errs, errors.New("api prefix must start with '/'"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally the command-line
// flags in args (os.Args without the program name).
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
