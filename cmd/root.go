// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shorts/internal/api"
	"shorts/internal/config"
	"shorts/internal/history"
	"shorts/internal/media"
	"shorts/internal/player"
	"shorts/internal/provider"
	"shorts/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagBackend  string
	flagPlayer   string
	flagJSON     bool
	flagContinue bool
	flagDebug    bool
)

// cfg holds the loaded configuration (merged: defaults < config file < env < flags).
var cfg *config.Config

// pattern is the provider URL pattern compiled from cfg.
var pattern *provider.Pattern

var rootCmd = &cobra.Command{
	Use:   "shorts [filter]",
	Short: "Browse, play and share short videos from the terminal",
	Long: `Shorts is a terminal client for a short-video backend.
List and filter the feed, play a pick with mpv/vlc (embedded provider links
are resolved to their embed form), and submit new video links.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              listRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Media player: mpv | vlc | iina | celluloid")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output records as JSON instead of picking")
	rootCmd.PersistentFlags().BoolVarP(&flagContinue, "continue", "c", false, "Resume playback from history")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < env < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file and environment values
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pattern, err = cfg.Pattern()
	if err != nil {
		return fmt.Errorf("compiling embed pattern: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[shorts] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

// listRun is the default command: shorts [filter words]
func listRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	client := api.New(cfg.BackendURL())

	var shorts []media.Short
	err := runWithSpinner("Fetching shorts", func() error {
		var err error
		shorts, err = client.Shorts()
		return err
	})
	if err != nil {
		return fmt.Errorf("fetching shorts: %w", err)
	}
	debugf("fetched %d shorts", len(shorts))

	filtered := media.Filter(shorts, query)
	if len(filtered) == 0 {
		if query != "" {
			return fmt.Errorf("no shorts matching %q", query)
		}
		fmt.Println("The feed is empty.")
		return nil
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(filtered)
	}

	items := make([]string, len(filtered))
	for i, s := range filtered {
		items[i] = formatShort(s)
	}

	idx, err := ui.Select("Play", items)
	if err != nil {
		return err
	}

	return playShort(filtered[idx])
}

// formatShort creates a display string for fzf selection.
func formatShort(s media.Short) string {
	parts := []string{s.DisplayName()}
	if len(s.Tags) > 0 {
		parts = append(parts, "["+strings.Join(s.Tags, ", ")+"]")
	}
	if pattern.IsKnownURL(s.VideoURL) {
		parts = append(parts, "(embed)")
	}
	return strings.Join(parts, " ")
}

// playShort resolves the playback URL for a record, plays it and records
// the session in history.
func playShort(s media.Short) error {
	url := pattern.PlaybackURL(s.VideoURL)
	debugf("playback URL: %s", url)

	p := player.New(cfg.Player)
	if !p.Available() {
		return fmt.Errorf("player %q not found in PATH", cfg.Player)
	}

	var startPos float64
	store := openHistory()
	if store != nil {
		defer store.Close()
		if flagContinue {
			if entry, err := store.Find(s.ID); err == nil && entry != nil {
				startPos = entry.Position
				debugf("resuming from position: %.0fs", startPos)
			}
		}
	}

	lastPos, err := p.Play(url, s.DisplayName(), startPos)
	if err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	if store != nil {
		entry := media.WatchEntry{
			ID:       s.ID,
			Name:     s.DisplayName(),
			VideoURL: s.VideoURL,
			Position: lastPos,
		}
		if err := store.Save(entry); err != nil {
			debugf("saving history failed: %v", err)
		}
	}

	return nil
}

// openHistory opens the watch history store, or returns nil when history
// is disabled or unavailable.
func openHistory() *history.Store {
	if !cfg.History {
		return nil
	}
	path, err := config.HistoryPath()
	if err != nil {
		debugf("resolving history path: %v", err)
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		debugf("opening history: %v", err)
		return nil
	}
	return store
}
