package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the workbench binaries.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Tracing TracingConfig
	Pattern PatternConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// LogConfig holds structured-logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// TracingConfig holds OpenTelemetry configuration.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Exporter    string
	Endpoint    string
	SampleRatio float64
}

// PatternConfig bounds the antenna pattern sampling endpoint.
type PatternConfig struct {
	// MaxSamples caps theta_samples × phi_samples per request.
	MaxSamples int
}

// Load reads configuration from environment variables and an optional
// .env file, applying defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "rf-server")
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
	v.SetDefault("PATTERN_MAX_SAMPLES", 65536)

	// Optional .env file; environment variables override it.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // file may not exist

	v.AutomaticEnv()

	ratio := v.GetFloat64("TRACING_SAMPLE_RATIO")
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	return &Config{
		Server: ServerConfig{
			Addr:           v.GetString("ADDR"),
			AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("TRACING_ENABLED"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
			Exporter:    v.GetString("TRACING_EXPORTER"),
			Endpoint:    v.GetString("OTLP_ENDPOINT"),
			SampleRatio: ratio,
		},
		Pattern: PatternConfig{
			MaxSamples: v.GetInt("PATTERN_MAX_SAMPLES"),
		},
	}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
