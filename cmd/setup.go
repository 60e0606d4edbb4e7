package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file on disk so env overrides and flags are not saved.
	cfg, err := config.LoadFile()
	if err != nil {
		slog.Warn("using default config", "path", config.Path(), "err", err)
		cfg = config.DefaultConfig()
	}

	vals := tui.SetupValues{
		Theme:        cfg.Appearance.Theme,
		DefaultImage: cfg.Roster.DefaultImage,
		SeedDefaults: cfg.Roster.SeedDefaults,
	}
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}
	vals.ApplySetup(&cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	slog.Debug("config saved", "path", config.Path())

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `eatsplit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
