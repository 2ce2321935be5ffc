package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MARKWIDGET_API_KEY", "MAX_UPLOAD_BYTES", "SESSION_TTL", "MAX_PENDING_CHANGES", "PARAGRAPH_SPACING"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("expected port %q, got %q", "8090", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected no api key, got %q", cfg.APIKey)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h ttl, got %v", cfg.SessionTTL)
	}
	if cfg.MaxPendingChanges != 256 {
		t.Errorf("expected 256 pending changes, got %d", cfg.MaxPendingChanges)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("MAX_PENDING_CHANGES", "-3")
	t.Setenv("PARAGRAPH_SPACING", "12.5")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port %q, got %q", "9000", cfg.Port)
	}
	if cfg.SessionTTL != 90*time.Second {
		t.Errorf("expected 90s, got %v", cfg.SessionTTL)
	}
	if cfg.MaxPendingChanges != 256 {
		t.Errorf("expected invalid value to fall back to 256, got %d", cfg.MaxPendingChanges)
	}
	if cfg.ParagraphSpacing != 12.5 {
		t.Errorf("expected 12.5, got %v", cfg.ParagraphSpacing)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: "http", ParagraphSpacing: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-numeric port")
	}
	cfg = Config{Port: "80", ParagraphSpacing: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative spacing")
	}
}
