package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/socialscribe/internal/flagx"
	"github.com/dmitrijs2005/socialscribe/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "10s" and integer nanoseconds are accepted. Fields
// left out of the file keep their previous value.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	APIPrefix        string         `json:"api_prefix"`
	DatabaseDSN      string         `json:"database_dsn"`
	GeminiAPIKey     string         `json:"gemini_api_key"`
	GenerationModels []string       `json:"generation_models"`
	AllowedOrigins   []string       `json:"allowed_origins"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
	LogLevel         string         `json:"log_level"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson loads the file named by the -c or -config flag in args, if any,
// and overlays its values on config. A missing or malformed file panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.APIPrefix, c.APIPrefix)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.GeminiAPIKey, c.GeminiAPIKey)
	if len(c.GenerationModels) > 0 {
		config.GenerationModels = c.GenerationModels
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.S3AccessKey, c.S3AccessKey)
	overlay(&config.S3SecretKey, c.S3SecretKey)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}
