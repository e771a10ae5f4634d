package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration settings.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Trip       TripConfig       `yaml:"trip"`
	Photos     PhotosConfig     `yaml:"photos"`
	Highlights HighlightsConfig `yaml:"highlights"`
}

// HTTPConfig holds the listener address and write rate limits.
type HTTPConfig struct {
	Addr           string  `yaml:"addr"`
	WriteRateLimit float64 `yaml:"write_rate_limit"`
	WriteBurst     int     `yaml:"write_burst"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// TripConfig points at the static JSON reference datasets for the trip.
type TripConfig struct {
	LodgingFile string `yaml:"lodging_file"`
	DiningFile  string `yaml:"dining_file"`
	CoursesFile string `yaml:"courses_file"`
}

// PhotosConfig holds the local photo storage location.
type PhotosConfig struct {
	Dir string `yaml:"dir"`
}

// HighlightsConfig controls the feed cache.
type HighlightsConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment variable overrides and defaults.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No file: environment variables carry the whole configuration.
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("PHOTOS_DIR"); v != "" {
		cfg.Photos.Dir = v
	}
	if v := os.Getenv("LODGING_FILE"); v != "" {
		cfg.Trip.LodgingFile = v
	}
	if v := os.Getenv("DINING_FILE"); v != "" {
		cfg.Trip.DiningFile = v
	}
	if v := os.Getenv("COURSES_FILE"); v != "" {
		cfg.Trip.CoursesFile = v
	}
	if v := os.Getenv("HIGHLIGHTS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Highlights.CacheTTL = d
		}
	}
	if v := os.Getenv("WRITE_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HTTP.WriteRateLimit = f
		}
	}

	cfg.applyDefaults()

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required (config postgres.dsn or DATABASE_URL)")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.WriteRateLimit <= 0 {
		c.HTTP.WriteRateLimit = 10
	}
	if c.HTTP.WriteBurst <= 0 {
		c.HTTP.WriteBurst = 20
	}
	if c.Trip.LodgingFile == "" {
		c.Trip.LodgingFile = "data/lodging.json"
	}
	if c.Trip.DiningFile == "" {
		c.Trip.DiningFile = "data/dining.json"
	}
	if c.Trip.CoursesFile == "" {
		c.Trip.CoursesFile = "data/courses.json"
	}
	if c.Photos.Dir == "" {
		c.Photos.Dir = "photos"
	}
	if c.Highlights.CacheTTL <= 0 {
		c.Highlights.CacheTTL = 30 * time.Second
	}
}
