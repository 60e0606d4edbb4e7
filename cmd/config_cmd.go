// Package cmd implements the eatsplit CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/eatsplit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Roster]")
	fmt.Printf("    Default image:  %s\n", cfg.Roster.DefaultImage)
	fmt.Printf("    Sample friends: %v\n", cfg.Roster.SeedDefaults)
	if len(cfg.Roster.Friends) > 0 {
		fmt.Printf("    Extra friends:  %d\n", len(cfg.Roster.Friends))
		for _, f := range cfg.Roster.Friends {
			balance := f.Balance
			if balance == "" {
				balance = "0"
			}
			fmt.Printf("      - %s (%s)\n", f.Name, balance)
		}
	}
	fmt.Println()

	fmt.Println("  Run `eatsplit setup` to reconfigure.")
	return nil
}
