package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Backend     BackendConfig
	Preview     PreviewConfig
	Tracing     TracingConfig
	Environment string
	LogLevel    string
	ExportPath  string
	Version     string
}

type BackendConfig struct {
	// URL is the API root, e.g. https://api.example.com/api
	URL      string
	APIToken string
	Timeout  time.Duration
}

type PreviewConfig struct {
	RenderTimeout time.Duration
	// MaxTemplateSize bounds the Liquid template size accepted for personalisation
	MaxTemplateSize int
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64
	TraceExporter       string // "log" or "none"
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("EXPORT_PATH", "")

	v.SetDefault("BACKEND_URL", "")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("HTTP_TIMEOUT", "15s")

	v.SetDefault("PREVIEW_RENDER_TIMEOUT", "5s")
	v.SetDefault("PREVIEW_MAX_TEMPLATE_SIZE", 100*1024)

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "emailbuilder")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "log")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	backendURL := strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_URL")), "/")
	if backendURL != "" {
		parsed, err := url.Parse(backendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("BACKEND_URL must be an absolute URL, got %q", backendURL)
		}
	}

	timeout := v.GetDuration("HTTP_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %q", v.GetString("HTTP_TIMEOUT"))
	}

	probability := v.GetFloat64("TRACING_SAMPLING_PROBABILITY")
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("TRACING_SAMPLING_PROBABILITY must be between 0 and 1, got %v", probability)
	}

	config := &Config{
		Backend: BackendConfig{
			URL:      backendURL,
			APIToken: v.GetString("API_TOKEN"),
			Timeout:  timeout,
		},
		Preview: PreviewConfig{
			RenderTimeout:   v.GetDuration("PREVIEW_RENDER_TIMEOUT"),
			MaxTemplateSize: v.GetInt("PREVIEW_MAX_TEMPLATE_SIZE"),
		},
		Tracing: TracingConfig{
			Enabled:             v.GetBool("TRACING_ENABLED"),
			ServiceName:         v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability: probability,
			TraceExporter:       v.GetString("TRACING_TRACE_EXPORTER"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		ExportPath:  v.GetString("EXPORT_PATH"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

// RequireBackend reports an error when the backend commands cannot run
func (c *Config) RequireBackend() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	return nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
