// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Store drivers accepted by STORE_DRIVER and MIRROR_DRIVERS.
var drivers = []string{"memory", "file", "sqlite", "postgres", "s3"}

// Defaults for the tunable values.
const (
	DefaultSaveIndicatorDelay = 800 * time.Millisecond
	DefaultMaxBodyBytes       = 1 << 20
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the primary snapshot backend. Defaults to "file".
	StoreDriver string

	// StorePath is the snapshot directory for the file driver and the database
	// file for the sqlite driver. Defaults to "data" and "data/board.db".
	StorePath string

	// DatabaseURL is the Postgres connection string. Required when the
	// postgres driver is used as primary or mirror.
	DatabaseURL string

	// S3 holds the bucket settings. Bucket is required when the s3 driver is
	// used as primary or mirror.
	S3 S3

	// MirrorDrivers lists backends that receive a copy of every snapshot.
	MirrorDrivers []string

	// SnapshotKey overrides the key the board is stored under.
	SnapshotKey string

	// SeedFile is an optional YAML file replacing the built-in seed board.
	SeedFile string

	// SaveIndicatorDelay is how long the saving indicator stays on after a write.
	SaveIndicatorDelay time.Duration

	// MaxBodyBytes caps request body sizes.
	MaxBodyBytes int64
}

// S3 configures the s3 snapshot driver.
type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver:   getEnv("STORE_DRIVER", "file"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MirrorDrivers: splitCSV(os.Getenv("MIRROR_DRIVERS")),
		SnapshotKey:   os.Getenv("SNAPSHOT_KEY"),
		SeedFile:      os.Getenv("SEED_FILE"),
		S3: S3{
			Bucket:   os.Getenv("S3_BUCKET"),
			Region:   getEnv("S3_REGION", "us-east-1"),
			Endpoint: os.Getenv("S3_ENDPOINT"),
			Prefix:   os.Getenv("S3_PREFIX"),
		},
	}

	var missing, invalid []string

	defaultPath := "data"
	if cfg.StoreDriver == "sqlite" {
		defaultPath = "data/board.db"
	}
	cfg.StorePath = getEnv("STORE_PATH", defaultPath)

	if !slices.Contains(drivers, cfg.StoreDriver) {
		invalid = append(invalid, "STORE_DRIVER")
	}
	for _, d := range cfg.MirrorDrivers {
		if !slices.Contains(drivers, d) || d == cfg.StoreDriver {
			invalid = append(invalid, "MIRROR_DRIVERS")
			break
		}
	}

	used := append([]string{cfg.StoreDriver}, cfg.MirrorDrivers...)
	if slices.Contains(used, "postgres") && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if slices.Contains(used, "s3") && cfg.S3.Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}

	var err error
	if cfg.S3.PathStyle, err = strconv.ParseBool(getEnv("S3_PATH_STYLE", "false")); err != nil {
		invalid = append(invalid, "S3_PATH_STYLE")
	}
	if cfg.SaveIndicatorDelay, err = time.ParseDuration(getEnv("SAVE_INDICATOR_DELAY", DefaultSaveIndicatorDelay.String())); err != nil || cfg.SaveIndicatorDelay <= 0 {
		invalid = append(invalid, "SAVE_INDICATOR_DELAY")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", strconv.Itoa(DefaultMaxBodyBytes)), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
