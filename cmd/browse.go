package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shorts/internal/api"
	"shorts/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the feed in a full-screen interactive list",
	Args:  cobra.NoArgs,
	RunE:  browseRun,
}

// browseRun loops between the full-screen browser and playback: picking a
// short suspends the browser, plays it, then reopens the browser.
func browseRun(cmd *cobra.Command, args []string) error {
	client := api.New(cfg.BackendURL())

	for {
		program := tea.NewProgram(tui.New(client, pattern), tea.WithAltScreen())
		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("running browser: %w", err)
		}

		model, ok := final.(tui.Model)
		if !ok {
			return fmt.Errorf("unexpected model type %T", final)
		}

		selected := model.Selection()
		if selected == nil {
			return nil
		}
		debugf("selected: %s (ID: %s)", selected.DisplayName(), selected.ID)

		if err := playShort(*selected); err != nil {
			return err
		}
	}
}
