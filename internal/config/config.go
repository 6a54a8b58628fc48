// Package config reads runtime settings for the waypath binary from the
// process environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/waypath/waypoint"
)

// Config holds the CLI settings. Flags override these values.
type Config struct {
	FixturesDir string
	Speed       float64
	DwellTime   float64
	Workers     int
	DatabaseURL string
}

// Load reads .env files (missing files are not an error) and then the
// environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		FixturesDir: Get("WAYPATH_FIXTURES", "data/shearwater_challenge"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	var err error
	if cfg.Speed, err = getFloat("WAYPATH_SPEED", waypoint.DefaultSpeed); err != nil {
		return Config{}, err
	}
	if cfg.Speed <= 0 {
		return Config{}, fmt.Errorf("config: WAYPATH_SPEED=%g: %w", cfg.Speed, waypoint.ErrBadSpeed)
	}
	if cfg.DwellTime, err = getFloat("WAYPATH_DWELL", waypoint.DefaultDwellTime); err != nil {
		return Config{}, err
	}
	if cfg.DwellTime < 0 {
		return Config{}, fmt.Errorf("config: WAYPATH_DWELL=%g: %w", cfg.DwellTime, waypoint.ErrBadDwellTime)
	}
	if cfg.Workers, err = getInt("WAYPATH_WORKERS", 4); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}

	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}

	return n, nil
}
