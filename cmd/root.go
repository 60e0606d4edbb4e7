package cmd

import (
	"log/slog"
	"os"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagTheme   string
	flagNoSeed  bool
	flagLogFile string
	flagDebug   bool
)

// logFile is the open --log-file sink, closed once the command returns.
var logFile *os.File

var rootCmd = &cobra.Command{
	Use:   "eatsplit",
	Short: "Split bills with friends",
	Long:  "Keep a roster of friends and split restaurant bills with them from the terminal.",
	RunE:  runTUI,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and closes the log file whether or not
// the command failed. Cobra skips post-run hooks on error.
func run() error {
	err := rootCmd.Execute()
	if cerr := closeLogging(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	// Assigned here rather than in the literal: setupLogging refers to rootCmd.
	rootCmd.PersistentPreRunE = setupLogging

	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Start without the sample friends")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

// setupLogging points slog at --log-file, or at stderr for the plain
// commands. The TUI owns the terminal, so without a log file it logs nowhere.
func setupLogging(c *cobra.Command, _ []string) error {
	config.LoadEnv()

	level := logging.LevelFromEnv()
	if flagDebug {
		level = slog.LevelDebug
	}

	switch {
	case flagLogFile != "":
		f, err := logging.OpenFile(flagLogFile, level)
		if err != nil {
			return err
		}
		logFile = f
	case c == rootCmd:
		logging.Discard()
	default:
		logging.Setup(os.Stderr, level, os.Getenv("NO_COLOR") == "")
	}
	return nil
}

func closeLogging() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// loadConfig loads the config file and applies command-line overrides.
// A broken config file is logged and replaced by defaults so the app can
// always start.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("using default config", "path", config.Path(), "err", err)
		cfg = config.DefaultConfig()
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagNoSeed {
		cfg.Roster.SeedDefaults = false
	}
	return cfg
}
