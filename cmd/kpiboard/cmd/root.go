package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/emagineer/kpiboard/internal/config"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/tui"
	"github.com/emagineer/kpiboard/internal/ui"
)

var (
	verbose   bool
	quiet     bool
	noColor   bool
	ephemeral bool
	cfgFile   string
	logger    *log.Logger
	cfg       *config.Config
	closeSlot func() error
)

var rootCmd = &cobra.Command{
	Use:   "kpiboard",
	Short: "Executive and operator KPI dashboard for the Emagineer portfolio",
	Long: ui.Header("kpiboard") + `
kpiboard shows WellBefore, D2C Builders and the combined portfolio as
executive or operator dashboards. Company, view, time range and dark mode
are remembered between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		applyUISettings()
		setupLogger()

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		cmd.SetContext(prefs.WithStore(cmd.Context(), store))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		store := prefs.FromContext(cmd.Context())
		if !ui.IsInteractiveTerminal() {
			fmt.Println(tui.Snapshot(store.State(), kpi.Sample(), ui.TerminalWidth()))
			return nil
		}
		return tui.Run(cmd.Context(), store, kpi.Sample(), tui.Options{
			ExportDir: cfg.Export.Dir,
			Logger:    logger,
		})
	},
}

// openStore opens the configured slot and initializes the preference store
// on it. Dark mode changes are published to the UI palette.
func openStore(ctx context.Context) (*prefs.Store, error) {
	backend := cfg.Storage.Backend
	if ephemeral {
		backend = config.BackendMemory
	}

	var slot prefs.Slot
	switch backend {
	case config.BackendMemory:
		slot = prefs.NewMemorySlot()
	case config.BackendSQLite:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		db, err := prefs.OpenSQLiteSlot(ctx, path)
		if err != nil {
			return nil, err
		}
		slot = db
		closeSlot = db.Close
	default:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		slot = prefs.NewFileSlot(path)
	}
	logger.Debug("preference slot opened", "backend", backend)

	theme := cfg.UI.Theme
	store := prefs.Initialize(slot, func() bool {
		return ui.SystemPrefersDark(theme)
	}, prefs.WithLogger(logger))
	store.WatchDarkMode(ui.ApplyDarkMode)
	return store, nil
}

func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	defer closeStore()

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if logger == nil {
			setupLogger()
		}
		logger.Error(err.Error())
		return err
	}
	return nil
}

// closeStore releases the preference slot on every exit path, including
// command errors.
func closeStore() {
	if closeSlot == nil {
		return
	}
	if err := closeSlot(); err != nil && logger != nil {
		logger.Warn("could not close preference storage", "error", err)
	}
	closeSlot = nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: <user config dir>/kpiboard/kpiboard.yaml)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep preferences in memory for this run only")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{NoColor: noColor})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
