package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/dashboard"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and change saved dashboard preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		printPrefs(prefs.FromContext(cmd.Context()).State())
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set company, view, range or dark",
	Long: `Set one preference field. Fields:
  company  wellbefore | d2cbuilders | portfolio
  view     executive | operator
  range    today | yesterday | week | month | quarter | year
  dark     true | false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := prefs.FromContext(cmd.Context())
		if err := setField(store, args[0], args[1]); err != nil {
			return err
		}
		printPrefs(store.State())
		return nil
	},
}

var prefsToggleDarkCmd = &cobra.Command{
	Use:   "toggle-dark",
	Short: "Flip dark mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := prefs.FromContext(cmd.Context())
		if err := store.ToggleDarkMode(); err != nil {
			return fmt.Errorf("saving preferences: %w", err)
		}
		printPrefs(store.State())
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := prefs.FromContext(cmd.Context())
		if err := store.Reset(); err != nil {
			return fmt.Errorf("saving preferences: %w", err)
		}
		printPrefs(store.State())
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsToggleDarkCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

// setField applies a single named preference to the store.
func setField(store *prefs.Store, field, value string) error {
	var err error
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "company":
		var c prefs.Company
		if c, err = prefs.ParseCompany(value); err != nil {
			return err
		}
		err = store.SetCompany(c)
	case "view":
		var v prefs.View
		if v, err = prefs.ParseView(value); err != nil {
			return err
		}
		err = store.SetView(v)
	case "range", "timerange", "time-range":
		var r prefs.TimeRange
		if r, err = prefs.ParseTimeRange(value); err != nil {
			return err
		}
		err = store.SetTimeRange(r)
	case "dark", "darkmode", "dark-mode":
		dark, perr := strconv.ParseBool(value)
		if perr != nil {
			return fmt.Errorf("invalid dark mode %q: expected true or false", value)
		}
		if store.State().DarkMode != dark {
			err = store.ToggleDarkMode()
		}
	default:
		return fmt.Errorf("unknown preference %q (expected company, view, range or dark)", field)
	}
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

func printPrefs(st prefs.State) {
	dark := "off"
	if st.DarkMode {
		dark = "on"
	}
	lines := []string{
		fmt.Sprintf("%-11s %s", "Company", ui.PrimaryStyle().Render(kpi.DisplayName(st.Company))),
		fmt.Sprintf("%-11s %s", "View", dashboard.ViewLabel(st.View)),
		fmt.Sprintf("%-11s %s", "Time Range", st.TimeRange.Label()),
		fmt.Sprintf("%-11s %s", "Dark Mode", dark),
	}
	fmt.Println(ui.InfoBox.Render(strings.Join(lines, "\n")))
}
