package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shorts/internal/history"
	"shorts/internal/media"
	"shorts/internal/ui"
)

var flagHistoryRemove bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Replay a previously watched short",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryRemove, "remove", false, "Remove the picked entry instead of playing it")
}

func historyRun(cmd *cobra.Command, args []string) error {
	store := openHistory()
	if store == nil {
		return fmt.Errorf("watch history is disabled or unavailable")
	}
	defer store.Close()

	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	items := history.FormatForDisplay(entries)
	idx, err := ui.Select("History", items)
	if err != nil {
		return err
	}
	entry := entries[idx]

	if flagHistoryRemove {
		if err := store.Remove(entry.ID); err != nil {
			return err
		}
		fmt.Printf("Removed %q from history.\n", entry.Name)
		return nil
	}

	debugf("replaying: %s (ID: %s)", entry.Name, entry.ID)

	// Replay from the recorded URL; resume from the saved position.
	flagContinue = true
	return playShort(media.Short{
		ID:       entry.ID,
		Name:     entry.Name,
		VideoURL: entry.VideoURL,
	})
}
