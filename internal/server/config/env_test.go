package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}

func TestParseEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("PORT", "3000")
	t.Setenv("API_PREFIX", "/v1")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODELS", "gemini-2.5-pro, gemini-2.5-flash")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("S3_BUCKET", "approved")
	t.Setenv("S3_BASE_ENDPOINT", "http://minio:9000")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, "/v1", c.APIPrefix)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "secret", c.GeminiAPIKey)
	assert.Equal(t, []string{"gemini-2.5-pro", "gemini-2.5-flash"}, c.GenerationModels)
	assert.Equal(t, []string{"https://app.example.com"}, c.AllowedOrigins)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "approved", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://minio:9000", c.S3BaseEndpoint)
}

func TestParseEnv_AddressWinsOverPort(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("PORT", "3000")
	t.Setenv("ADDRESS", "127.0.0.1:9999")

	c := &Config{}
	parseEnv(c)
	assert.Equal(t, "127.0.0.1:9999", c.EndpointAddrHTTP)
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	c := &Config{}
	c.LoadDefaults()
	want := *c
	parseEnv(c)
	assert.Equal(t, want, *c)
}

func TestParseEnv_BadShutdownTimeoutPanics(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	assert.Panics(t, func() { parseEnv(&Config{}) })
}

func TestParseEnv_LoadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DATABASE_DSN=postgres://dotenv\nGEMINI_API_KEY=from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("GEMINI_API_KEY=from-local\n"), 0o600))

	c := &Config{}
	parseEnv(c)

	assert.Equal(t, "postgres://dotenv", c.DatabaseDSN)
	assert.Equal(t, "from-local", c.GeminiAPIKey)
}

func TestLoadEnvFiles_SkipsMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Empty(t, loadEnvFiles([]string{".env", ".env.local"}))
}
