package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	ProjectID      string
	StorageBucket  string
	Port           string
	AuthDisabled   bool
	RateLimitRPS   float64
	RateLimitBurst int
	CascadeRetries int
}

func Load() (*Config, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT environment variable is required but not set")
	}

	storageBucket := os.Getenv("STORAGE_BUCKET")
	if storageBucket == "" {
		storageBucket = projectID + ".appspot.com"
		slog.Info("STORAGE_BUCKET not set, using default bucket", "bucket", storageBucket)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		slog.Info("Defaulting to port", "port", port)
	}

	authDisabled := false
	if v := os.Getenv("AUTH_DISABLED"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_DISABLED %q: %w", v, err)
		}
		authDisabled = parsed
		if authDisabled {
			slog.Warn("AUTH_DISABLED is set, API endpoints are unauthenticated")
		}
	}

	rateLimitRPS := 10.0
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		rateLimitRPS = parsed
	}

	rateLimitBurst := 20
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		rateLimitBurst = parsed
	}

	cascadeRetries := 2
	if v := os.Getenv("CASCADE_RETRIES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CASCADE_RETRIES %q: %w", v, err)
		}
		cascadeRetries = parsed
	}

	return &Config{
		ProjectID:      projectID,
		StorageBucket:  storageBucket,
		Port:           port,
		AuthDisabled:   authDisabled,
		RateLimitRPS:   rateLimitRPS,
		RateLimitBurst: rateLimitBurst,
		CascadeRetries: cascadeRetries,
	}, nil
}
