// kpiboard is a terminal KPI dashboard for the Emagineer portfolio
package main

import (
	"os"

	"github.com/emagineer/kpiboard/cmd/kpiboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
