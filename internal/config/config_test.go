package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.BrasilAPIBaseURL != "https://brasilapi.com.br/api" {
		t.Errorf("BrasilAPIBaseURL = %q", cfg.BrasilAPIBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.RefreshHour != 7 {
		t.Errorf("RefreshHour = %d, want 7", cfg.RefreshHour)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("REFRESH_SCHEDULE_HOUR", "21")
	t.Setenv("NOTIFY_WEBHOOK_URL", "http://localhost:9999/notify")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v, want 3s", cfg.HTTPTimeout)
	}
	if cfg.RefreshHour != 21 {
		t.Errorf("RefreshHour = %d, want 21", cfg.RefreshHour)
	}
	if cfg.NotifyWebhookURL != "http://localhost:9999/notify" {
		t.Errorf("NotifyWebhookURL = %q", cfg.NotifyWebhookURL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid HTTP_TIMEOUT")
	}
	t.Setenv("HTTP_TIMEOUT", "10s")

	t.Setenv("REFRESH_SCHEDULE_HOUR", "25")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range REFRESH_SCHEDULE_HOUR")
	}
}
