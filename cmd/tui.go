package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/tui"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if !theme.Valid(cfg.Appearance.Theme) {
		return fmt.Errorf("unknown theme %q", cfg.Appearance.Theme)
	}
	theme.SetActive(cfg.Appearance.Theme)

	friends, err := config.SeedFriends(cfg)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	firstRun := !config.Exists()
	slog.Info("starting",
		"config", config.Path(),
		"first_run", firstRun,
		"friends", len(friends),
		"theme", cfg.Appearance.Theme,
	)

	app := tui.NewApp(tui.Options{
		Friends:      friends,
		DefaultImage: cfg.Roster.DefaultImage,
		FirstRun:     firstRun,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
