package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emagineer/kpiboard/internal/config"
	"github.com/emagineer/kpiboard/internal/dashboard"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit dashboard preferences and display settings",
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store := prefs.FromContext(cmd.Context())
	st := store.State()

	company := string(st.Company)
	view := string(st.View)
	timeRange := string(st.TimeRange)
	dark := st.DarkMode

	theme := cfg.UI.Theme
	dense := cfg.UI.Dense
	noColorPref := cfg.UI.NoColor
	exportDir := cfg.Export.Dir

	companyOptions := make([]huh.Option[string], 0, len(prefs.Companies()))
	for _, c := range prefs.Companies() {
		companyOptions = append(companyOptions, huh.NewOption(kpi.DisplayName(c), string(c)))
	}
	viewOptions := make([]huh.Option[string], 0, len(prefs.Views()))
	for _, v := range prefs.Views() {
		viewOptions = append(viewOptions, huh.NewOption(dashboard.ViewLabel(v), string(v)))
	}
	themeOptions := []huh.Option[string]{huh.NewOption("Follow terminal", "system")}
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(cases.Title(language.English).String(name), name))
	}
	rangeOptions := make([]huh.Option[string], 0, len(prefs.TimeRanges()))
	for _, r := range prefs.TimeRanges() {
		rangeOptions = append(rangeOptions, huh.NewOption(r.Label(), string(r)))
	}

	ui.StartScreen("SETTINGS", "Dashboard preferences are saved immediately; display settings go to kpiboard.yaml")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Company").
				Options(companyOptions...).
				Value(&company),
			huh.NewSelect[string]().
				Title("View").
				Options(viewOptions...).
				Value(&view),
			huh.NewSelect[string]().
				Title("Time Range").
				Options(rangeOptions...).
				Value(&timeRange),
			huh.NewConfirm().
				Title("Dark Mode").
				Value(&dark),
		).Title("Dashboard"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme on first run").
				Description("Used when no preferences are saved yet").
				Options(themeOptions...).
				Value(&theme),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing").
				Value(&dense),
			huh.NewConfirm().
				Title("Disable Colors").
				Description("Use monochrome output").
				Value(&noColorPref),
			huh.NewInput().
				Title("Export Directory").
				Description("Where CSV exports are written").
				Value(&exportDir),
		).Title("Display"),
	).WithTheme(ui.HuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println(ui.WarningStyle.Render("No changes saved."))
			return nil
		}
		return err
	}

	for _, field := range []struct{ name, value string }{
		{"company", company},
		{"view", view},
		{"range", timeRange},
		{"dark", fmt.Sprint(dark)},
	} {
		if err := setField(store, field.name, field.value); err != nil {
			return err
		}
	}

	cfg.UI.Theme = theme
	cfg.UI.Dense = dense
	cfg.UI.NoColor = noColorPref
	cfg.Export.Dir = exportDir
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	logger.Debug("settings saved", "path", path)

	applyUISettings()
	printPrefs(store.State())
	fmt.Println(ui.SuccessBox.Render("✔ Settings saved to " + path))
	return nil
}
