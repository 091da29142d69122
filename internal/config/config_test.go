package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spamlens/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "OCR_API_KEY", "SPAMLENS_SERVER_PORT", "SPAMLENS_OCR_API_KEY",
		"SPAMLENS_MODEL_SOURCE", "SPAMLENS_CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Empty(t, cfg.OCR.APIKey)
	assert.False(t, cfg.OCR.Enabled())
	assert.Equal(t, "https://api.ocr.space/parse/image", cfg.OCR.Endpoint)
	assert.Equal(t, 0, cfg.OCR.TimeoutSecs)
	assert.Equal(t, int64(10*1024*1024), cfg.OCR.MaxImageBytes())

	assert.Equal(t, config.ModelSourceLocal, cfg.Model.Source)
	assert.Equal(t, "./models", cfg.Model.Dir)
	assert.Equal(t, "manifest.yaml", cfg.Model.Manifest)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PrefixedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPAMLENS_SERVER_PORT", ":9090")
	t.Setenv("SPAMLENS_OCR_API_KEY", "k-prefixed")
	t.Setenv("SPAMLENS_MODEL_SOURCE", "S3")
	t.Setenv("SPAMLENS_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "k-prefixed", cfg.OCR.APIKey)
	assert.True(t, cfg.OCR.Enabled())
	assert.Equal(t, config.ModelSourceS3, cfg.Model.Source)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_LegacyOCRKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OCR_API_KEY", "k-legacy")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "k-legacy", cfg.OCR.APIKey)
}

func TestLoad_PlatformPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Port)
}
