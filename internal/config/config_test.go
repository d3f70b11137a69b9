package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/faststock/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := config.Config{Locale: "en", LogLevel: "warn", ClearScreen: true, Pause: true}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}

	tag, err := cfg.Language()
	if err != nil || tag != language.English {
		t.Errorf("expected English, got %s (%v)", tag, err)
	}
	level, err := cfg.Level()
	if err != nil || level != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s (%v)", level, err)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FASTSTOCK_LOCALE", "pt-BR")
	t.Setenv("FASTSTOCK_LOG_LEVEL", "debug")
	t.Setenv("FASTSTOCK_PAUSE", "false")

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Errorf("expected locale pt-BR, got %q", cfg.Locale)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.Pause {
		t.Error("expected pause disabled by env")
	}
	if !cfg.ClearScreen {
		t.Error("expected clear screen to keep its default")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faststock.yaml")
	content := "locale: pt-BR\nlog_level: info\nclear_screen: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Config{Locale: "pt-BR", LogLevel: "info", ClearScreen: false, Pause: true}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverridesWinOverEnvAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faststock.yaml")
	if err := os.WriteFile(path, []byte("locale: pt-BR\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FASTSTOCK_LOCALE", "pt-BR")

	cfg, err := config.Load(path, map[string]any{config.KeyLocale: "en", config.KeyPause: false})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en" {
		t.Errorf("expected override locale en, got %q", cfg.Locale)
	}
	if cfg.Pause {
		t.Error("expected pause disabled by override")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := config.Load(path, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read config prefix, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"unsupported locale", map[string]any{config.KeyLocale: "ja"}},
		{"unknown log level", map[string]any{config.KeyLogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load("", tt.overrides)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
