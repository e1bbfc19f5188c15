// Package config handles TOML-based configuration loading and validation.
// Precedence is defaults < config file < environment < CLI flags; the flag
// layer is applied by the cmd package after Load.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"shorts/internal/provider"
)

// Config holds all application configuration.
type Config struct {
	Backend string      `toml:"backend"`
	Player  string      `toml:"player"`
	History bool        `toml:"history"`
	Debug   bool        `toml:"debug"`
	Embed   EmbedConfig `toml:"embed"`
}

// EmbedConfig describes the provider URL pattern used to classify video
// links. The identifier length and host set track the provider's current
// URL scheme and can change without a rebuild.
type EmbedConfig struct {
	Base       string   `toml:"base"`
	IDLength   int      `toml:"id_length"`
	Hosts      []string `toml:"hosts"`
	ShortHosts []string `toml:"short_hosts"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend: "http://localhost:8080",
		Player:  "mpv",
		History: true,
		Debug:   false,
		Embed: EmbedConfig{
			Base:       "https://www.youtube.com/embed/",
			IDLength:   11,
			Hosts:      []string{"youtube.com", "youtube-nocookie.com"},
			ShortHosts: []string{"youtu.be"},
		},
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shorts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "shorts"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the path to the watch history database.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "shorts", "history.db"), nil
}

// Load reads the config file, applies environment overrides and merges with
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv layers .env plus SHORTS_* environment variables over the config.
func (c *Config) applyEnv() {
	_ = godotenv.Load() // a missing .env simply means no overrides

	if v := os.Getenv("SHORTS_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("SHORTS_PLAYER"); v != "" {
		c.Player = v
	}
	if v := os.Getenv("SHORTS_DEBUG"); v != "" {
		c.Debug = v == "1" || strings.EqualFold(v, "true")
	}
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	validPlayers := map[string]bool{
		"mpv": true, "vlc": true, "iina": true, "celluloid": true,
	}
	if !validPlayers[strings.ToLower(c.Player)] {
		return fmt.Errorf("unsupported player %q (valid: mpv, vlc, iina, celluloid)", c.Player)
	}

	u, err := url.Parse(c.Backend)
	if err != nil {
		return fmt.Errorf("malformed backend URL %q: %w", c.Backend, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL must be http(s), got %q", c.Backend)
	}
	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", c.Backend)
	}

	if _, err := c.Pattern(); err != nil {
		return fmt.Errorf("embed pattern: %w", err)
	}

	return nil
}

// Pattern compiles the provider pattern from the embed configuration.
func (c *Config) Pattern() (*provider.Pattern, error) {
	return provider.New(c.Embed.Base, c.Embed.IDLength, c.Embed.Hosts, c.Embed.ShortHosts)
}

// BackendURL returns the backend base URL without a trailing slash.
func (c *Config) BackendURL() string {
	return strings.TrimRight(c.Backend, "/")
}
