package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Backend.URL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Preview.RenderTimeout)
	assert.Equal(t, 100*1024, cfg.Preview.MaxTemplateSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "emailbuilder", cfg.Tracing.ServiceName)
	assert.Equal(t, 0.1, cfg.Tracing.SamplingProbability)
	assert.Equal(t, VERSION, cfg.Version)

	assert.Error(t, cfg.RequireBackend())
}

func TestLoadWithOptions_Environment(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.com/api/")
	t.Setenv("API_TOKEN", "token")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("EXPORT_PATH", "/tmp/email.html")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLING_PROBABILITY", "1")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.Backend.URL)
	assert.Equal(t, "token", cfg.Backend.APIToken)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "/tmp/email.html", cfg.ExportPath)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SamplingProbability)
	assert.NoError(t, cfg.RequireBackend())
}

func TestLoadWithOptions_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"relative backend url", "BACKEND_URL", "api.example.com"},
		{"zero timeout", "HTTP_TIMEOUT", "0s"},
		{"sampling above one", "TRACING_SAMPLING_PROBABILITY", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadWithOptions(LoadOptions{})
			assert.Error(t, err)
		})
	}
}

func TestLoadWithOptions_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("BACKEND_URL=http://localhost:8080/api\nLOG_LEVEL=warn\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.test"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.Backend.URL)
	assert.Equal(t, "warn", cfg.LogLevel)

	// a missing file is not an error
	_, err = LoadWithOptions(LoadOptions{EnvFile: ".env.missing"})
	assert.NoError(t, err)
}
