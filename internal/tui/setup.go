package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/roster"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SetupValues holds the answers of the first-run wizard.
type SetupValues struct {
	Theme        string
	DefaultImage string
	SeedDefaults bool
}

// NewSetupForm builds the setup wizard bound to v. It is shared by the
// first-run screen and the `eatsplit setup` command.
func NewSetupForm(v *SetupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Default avatar URL").
				Description("New friends get this image plus a unique suffix.").
				Value(&v.DefaultImage).
				Validate(validateImageURL),
			huh.NewConfirm().
				Title("Start with the sample friends?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.SeedDefaults),
		).
			Title("Welcome to eatsplit").
			Description("Keep track of who owes whom after a shared meal."),
	).WithShowHelp(true)
}

func validateImageURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("an avatar URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", s)
	}
	return nil
}

// ApplySetup writes the wizard answers into cfg.
func (v SetupValues) ApplySetup(cfg *config.Config) {
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if img := strings.TrimSpace(v.DefaultImage); img != "" {
		cfg.Roster.DefaultImage = img
	}
	cfg.Roster.SeedDefaults = v.SeedDefaults
}

// applySetup saves the wizard answers and applies them to the running app.
func (a *App) applySetup() {
	v := *a.setupVals

	cfg, err := config.LoadFile()
	if err != nil {
		slog.Warn("loading config for setup", "err", err)
		cfg = config.DefaultConfig()
	}
	v.ApplySetup(&cfg)

	theme.SetActive(cfg.Appearance.Theme)
	a.add = newAddFormState(cfg.Roster.DefaultImage)
	if !cfg.Roster.SeedDefaults {
		a.store = roster.NewStore(nil)
		a.cursor, a.offset = 0, 0
	}

	if err := config.Save(cfg); err != nil {
		slog.Error("saving config", "path", config.Path(), "err", err)
		a.notice = "config not saved: settings apply to this session only"
		return
	}
	slog.Info("config saved", "path", config.Path(), "theme", cfg.Appearance.Theme)
	a.notice = "saved " + config.Path()
}

func (a App) viewSetup() string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.setupForm.View(),
		lipgloss.WithWhitespaceBackground(t.Background))
}
