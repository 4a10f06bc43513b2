package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gridclear/sagcalc/internal/engine"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ExposureCategory is the default terrain category for requests that do
	// not select one themselves.
	ExposureCategory string

	// Kafka result publishing (optional; the service runs without it).
	KafkaEnabled      bool
	KafkaBrokers      []string
	KafkaResultsTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ExposureCategory: envOrDefault("EXPOSURE_CATEGORY", "C"),

		KafkaEnabled:      os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:      parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaResultsTopic: envOrDefault("KAFKA_RESULTS_TOPIC", "line-clearance-results"),
	}

	if _, err := engine.Exposure(cfg.ExposureCategory); err != nil {
		return nil, fmt.Errorf("EXPOSURE_CATEGORY: %w", err)
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaResultsTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_RESULTS_TOPIC is empty")
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			brokers = append(brokers, part)
		}
	}
	return brokers
}
