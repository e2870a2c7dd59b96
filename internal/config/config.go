package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Extraction input cap
	MaxTextBytes int

	// Job state
	JobTTL time.Duration

	// Chat sessions
	SessionTTL time.Duration
	RedisAddr  string

	// Latency aggregation window
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("FINQA_PORT", "8080"),

		APIKey: os.Getenv("FINQA_API_KEY"),

		WorkerCount:  envInt("FINQA_WORKERS", 4),
		MaxQueueSize: envInt("FINQA_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("FINQA_MAX_UPLOAD_BYTES", 52428800), // 50MB

		MaxTextBytes: envInt("FINQA_MAX_TEXT_BYTES", 1048576), // 1MB

		JobTTL: envDuration("FINQA_JOB_TTL", 1*time.Hour),

		SessionTTL: envDuration("FINQA_SESSION_TTL", 24*time.Hour),
		RedisAddr:  os.Getenv("FINQA_REDIS_ADDR"),

		StatsWindow: envDuration("FINQA_STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("FINQA_PDFTOTEXT_FALLBACK", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = 1048576
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.SessionTTL < 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("FINQA_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
