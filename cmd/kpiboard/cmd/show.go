package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/tui"
	"github.com/emagineer/kpiboard/internal/ui"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current dashboard once",
	Long:  `Render the dashboard for the saved company, view and time range without starting the interactive UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		width := showWidth
		if width <= 0 {
			width = ui.TerminalWidth()
		}
		st := prefs.FromContext(cmd.Context()).State()
		fmt.Println(tui.Snapshot(st, kpi.Sample(), width))
		if ui.IsInteractiveTerminal() {
			fmt.Println(ui.HintStyle.Render("Run kpiboard without arguments for the interactive dashboard."))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "Render width (default: terminal width)")
}
