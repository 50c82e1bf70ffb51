package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Matching
	MatchThreshold float64 `envconfig:"MATCH_THRESHOLD" default:"0.6"`

	// Extractor
	Extractor        string        `envconfig:"EXTRACTOR" default:"facerec"`
	ExtractorURL     string        `envconfig:"EXTRACTOR_URL" default:"http://localhost:5000"`
	ExtractorTimeout time.Duration `envconfig:"EXTRACTOR_TIMEOUT" default:"30s"`

	// Registry
	RegistrySource    string        `envconfig:"REGISTRY_SOURCE" default:"remote"`
	FacesDir          string        `envconfig:"FACES_DIR" default:"/var/lib/facerec/faces"`
	EnrollmentAPIURL  string        `envconfig:"ENROLLMENT_API_URL" default:"http://attendance_api"`
	EnrollmentTimeout time.Duration `envconfig:"ENROLLMENT_TIMEOUT" default:"10s"`

	// Database (postgres registry source only)
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Attendance reporting
	AttendanceAPIURL  string        `envconfig:"ATTENDANCE_API_URL" default:"http://attendance_api"`
	AttendanceSecret  string        `envconfig:"ATTENDANCE_SECRET"`
	AttendanceTimeout time.Duration `envconfig:"ATTENDANCE_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 2 {
		return fmt.Errorf("MATCH_THRESHOLD must be within [0, 2], got %v", c.MatchThreshold)
	}
	if c.RegistrySource == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when REGISTRY_SOURCE=postgres")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
