package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SENTRY_DSN", "APP_ENV", "REQUEST_RETENTION_DAYS", "RETENTION_SWEEP_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.SentryDSN != "" {
		t.Errorf("SentryDSN = %q, want empty", cfg.SentryDSN)
	}
	if cfg.Environment != "" {
		t.Errorf("Environment = %q, want empty", cfg.Environment)
	}
	if cfg.RequestRetentionDays != 2 {
		t.Errorf("RequestRetentionDays = %d, want 2", cfg.RequestRetentionDays)
	}
	if cfg.RetentionSweepInterval != 48*time.Hour {
		t.Errorf("RetentionSweepInterval = %v, want 48h", cfg.RetentionSweepInterval)
	}
}

func TestLoadReadsSentryAndEnvironment(t *testing.T) {
	t.Setenv("SENTRY_DSN", "https://key@o0.ingest.sentry.io/1")
	t.Setenv("APP_ENV", "staging")

	cfg := Load()

	if cfg.SentryDSN != "https://key@o0.ingest.sentry.io/1" {
		t.Errorf("SentryDSN = %q, want env value", cfg.SentryDSN)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "staging")
	}
}
