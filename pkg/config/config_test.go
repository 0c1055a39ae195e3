package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:               EnvProduction,
		DatabaseDriver:            DriverPostgres,
		SessionAuthKey:            strings.Repeat("a", 32),
		SessionEncryptionKey:      strings.Repeat("b", 32),
		LogLevel:                  "info",
		LiveMaxConnectionsPerUser: 5,
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(*Config) {}, ""},
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"sqlite driver", func(c *Config) { c.DatabaseDriver = DriverSQLite }, "DATABASE_DRIVER"},
		{"zero connection limit", func(c *Config) { c.LiveMaxConnectionsPerUser = 0 }, "LIVE_MAX_CONNECTIONS_PER_USER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_NonProductionIsNoop(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, DatabaseDriver: DriverSQLite, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development config, got %v", err)
	}
}

func TestDataSource(t *testing.T) {
	cfg := &Config{DatabaseDriver: DriverSQLite, SQLitePath: "/tmp/registry.db", DatabaseURL: "postgres://x"}
	if got := cfg.DataSource(); got != "/tmp/registry.db" {
		t.Errorf("sqlite: got %q", got)
	}
	cfg.DatabaseDriver = DriverPostgres
	if got := cfg.DataSource(); got != "postgres://x" {
		t.Errorf("postgres: got %q", got)
	}
}
