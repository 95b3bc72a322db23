package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/tui"
	"github.com/emagineer/kpiboard/internal/ui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the dashboard keyboard shortcuts",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := tui.ShortcutsMarkdown()
		if noColor || ui.CurrentPreferences.NoColor || !ui.IsInteractiveTerminal() {
			fmt.Print(md)
			return nil
		}

		style := "light"
		if ui.IsDark() {
			style = "dark"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(min(100, ui.TerminalWidth())),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("rendering shortcuts: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}
