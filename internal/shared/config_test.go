package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Client.Name != "WEB_REMIX" {
		t.Errorf("client name = %q", cfg.Client.Name)
	}
	if cfg.Locale.HL != "en" || cfg.Locale.GL != "US" {
		t.Errorf("locale = %+v", cfg.Locale)
	}
	if cfg.Transport.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d", cfg.Transport.TimeoutSeconds)
	}
	if cfg.Transport.RateLimit != 5.0 {
		t.Errorf("rate limit = %v", cfg.Transport.RateLimit)
	}
	if cfg.Paging.MaxPages != 20 {
		t.Errorf("max pages = %d", cfg.Paging.MaxPages)
	}
	if cfg.Cache.Path == "" {
		t.Error("expected a cache path")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[client]
name = "WEB_REMIX"
version = "9.9"

[locale]
hl = "de"
gl = "DE"

[transport]
timeout_seconds = 10
max_retries = 1
rate_limit = 2.5
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Locale.HL != "de" {
			t.Errorf("hl = %q", cfg.Locale.HL)
		}
		if cfg.Transport.MaxRetries != 1 {
			t.Errorf("max retries = %d", cfg.Transport.MaxRetries)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("malformed TOML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[client\nname="), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("created file should load: %v", err)
	}
	if cfg.Client.Name != "WEB_REMIX" {
		t.Errorf("client name = %q", cfg.Client.Name)
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected an error when the file already exists")
	}
}
