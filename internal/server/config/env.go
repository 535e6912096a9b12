package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFiles are loaded, when present, before the process environment is read.
// Later files override earlier ones.
var envFiles = []string{".env", ".env.local"}

func loadEnvFiles(files []string) []string {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			continue
		}
		loaded = append(loaded, file)
	}
	return loaded
}

// splitList parses a comma separated list, dropping blank items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setList(dst *[]string, key string) {
	if v := splitList(os.Getenv(key)); len(v) > 0 {
		*dst = v
	}
}

// parseEnv overlays Config with environment variables. PORT is accepted for
// compatibility with hosting platforms and becomes ":PORT"; ADDRESS wins over
// it when both are set.
//
// An unparsable SHUTDOWN_TIMEOUT panics, like a broken JSON file or flag.
func parseEnv(config *Config) {
	loadEnvFiles(envFiles)

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.EndpointAddrHTTP = ":" + port
	}
	setString(&config.EndpointAddrHTTP, "ADDRESS")
	setString(&config.APIPrefix, "API_PREFIX")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.GeminiAPIKey, "GEMINI_API_KEY")
	setList(&config.GenerationModels, "GEMINI_MODELS")
	setList(&config.AllowedOrigins, "ALLOWED_ORIGINS")
	setString(&config.LogLevel, "LOG_LEVEL")

	if v := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}

	setString(&config.S3AccessKey, "S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "S3_SECRET_KEY")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}
