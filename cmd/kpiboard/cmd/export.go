package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/export"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current dashboard to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		st := prefs.FromContext(cmd.Context()).State()
		path, err := export.ToDir(dir, st, kpi.Sample(), time.Now())
		if err != nil {
			return err
		}
		logger.Debug("dashboard exported", "path", path, "company", st.Company, "view", st.View)
		fmt.Println(ui.SuccessStyle.Render("✔ Exported to " + path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "Output directory (default: export.dir from config)")
}
