package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/ui"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about kpiboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Header("kpiboard"))
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Commit:     %s\n", Commit)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
