package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Player != "mpv" {
		t.Errorf("default player = %q, want mpv", cfg.Player)
	}
	if cfg.Backend != "http://localhost:8080" {
		t.Errorf("default backend = %q", cfg.Backend)
	}
	if !cfg.History {
		t.Error("default history should be true")
	}
	if cfg.Embed.IDLength != 11 {
		t.Errorf("default embed id_length = %d, want 11", cfg.Embed.IDLength)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"invalid player", func(c *Config) { c.Player = "notepad" }, true},
		{"valid vlc", func(c *Config) { c.Player = "vlc" }, false},
		{"empty backend", func(c *Config) { c.Backend = "" }, true},
		{"backend without scheme", func(c *Config) { c.Backend = "localhost:8080" }, true},
		{"https backend", func(c *Config) { c.Backend = "https://shorts.example.com" }, false},
		{"zero id length", func(c *Config) { c.Embed.IDLength = 0 }, true},
		{"no embed hosts", func(c *Config) { c.Embed.Hosts = nil; c.Embed.ShortHosts = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("SHORTS_BACKEND", "")
	t.Setenv("SHORTS_PLAYER", "")

	dir := filepath.Join(tmpDir, "shorts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `
backend = "https://api.example.com"
player = "vlc"
history = false

[embed]
base = "https://player.example.com/embed/"
id_length = 8
hosts = ["example.com"]
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Backend != "https://api.example.com" {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Player != "vlc" {
		t.Errorf("player = %q, want vlc", cfg.Player)
	}
	if cfg.History {
		t.Error("history should be false")
	}
	if cfg.Embed.IDLength != 8 {
		t.Errorf("embed id_length = %d, want 8", cfg.Embed.IDLength)
	}

	p, err := cfg.Pattern()
	if err != nil {
		t.Fatalf("Pattern() error: %v", err)
	}
	if got, ok := p.EmbedURL("https://example.com/watch?v=abcd1234"); !ok || got != "https://player.example.com/embed/abcd1234" {
		t.Errorf("configured pattern embed = (%q, %v)", got, ok)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHORTS_BACKEND", "")
	t.Setenv("SHORTS_PLAYER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Player != "mpv" {
		t.Errorf("player = %q, want default mpv", cfg.Player)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHORTS_BACKEND", "https://env.example.com")
	t.Setenv("SHORTS_PLAYER", "vlc")
	t.Setenv("SHORTS_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != "https://env.example.com" {
		t.Errorf("backend = %q, want env override", cfg.Backend)
	}
	if cfg.Player != "vlc" {
		t.Errorf("player = %q, want vlc", cfg.Player)
	}
	if !cfg.Debug {
		t.Error("debug should be true via env")
	}
}

func TestBackendURLTrimsSlash(t *testing.T) {
	cfg := Default()
	cfg.Backend = "https://api.example.com/"
	if got := cfg.BackendURL(); got != "https://api.example.com" {
		t.Errorf("BackendURL() = %q", got)
	}
}
