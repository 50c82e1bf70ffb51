package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with explicit vars",
			envVars: map[string]string{
				"PORT":               "9090",
				"ENV":                "production",
				"MATCH_THRESHOLD":    "0.5",
				"ENROLLMENT_API_URL": "http://enrollment.internal",
				"ATTENDANCE_API_URL": "http://attendance.internal",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 9090 &&
					c.Environment == "production" &&
					c.MatchThreshold == 0.5 &&
					c.EnrollmentAPIURL == "http://enrollment.internal" &&
					c.AttendanceAPIURL == "http://attendance.internal"
			},
		},
		{
			name:    "uses defaults when vars missing",
			envVars: map[string]string{},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8080 &&
					c.Environment == "development" &&
					c.MatchThreshold == 0.6 &&
					c.Extractor == "facerec" &&
					c.RegistrySource == "remote"
			},
		},
		{
			name: "fails on out-of-range threshold",
			envVars: map[string]string{
				"MATCH_THRESHOLD": "3.5",
			},
			wantErr: true,
			check:   nil,
		},
		{
			name: "fails when postgres source has no DATABASE_URL",
			envVars: map[string]string{
				"REGISTRY_SOURCE": "postgres",
			},
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Load() config check failed: %+v", cfg)
			}
		})
	}
}

func TestConfig_Environment(t *testing.T) {
	dev := &Config{Environment: "development"}
	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Errorf("development environment misclassified")
	}

	prod := &Config{Environment: "production"}
	if !prod.IsProduction() || prod.IsDevelopment() {
		t.Errorf("production environment misclassified")
	}
}
