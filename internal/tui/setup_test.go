package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupEnv points the config dir at a temp dir and clears the env
// overrides. The active theme is restored afterwards.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("EATSPLIT_THEME", "")
	t.Setenv("EATSPLIT_DEFAULT_IMAGE", "")
	prev := theme.Active.Name
	t.Cleanup(func() { theme.SetActive(prev) })
	return dir
}

func newFirstRunApp(t *testing.T) App {
	t.Helper()
	a := NewApp(Options{Friends: testFriends(), DefaultImage: "https://img.test/48", FirstRun: true})
	return send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func TestApplySetupWithoutSampleFriends(t *testing.T) {
	setupEnv(t)
	a := newFirstRunApp(t)
	a.setupVals.Theme = "tokyo-night"
	a.setupVals.DefaultImage = "https://img.test/avatar"
	a.setupVals.SeedDefaults = false

	a.applySetup()

	if n := a.store.Len(); n != 0 {
		t.Errorf("roster has %d friends, want 0", n)
	}
	if !config.Exists() {
		t.Fatal("config file should be written")
	}
	if !strings.HasPrefix(a.notice, "saved ") {
		t.Errorf("notice = %q, want saved path", a.notice)
	}
	if theme.Active.Name != "tokyo-night" {
		t.Errorf("active theme = %q, want tokyo-night", theme.Active.Name)
	}
	if a.add.form.Image != "https://img.test/avatar" {
		t.Errorf("add form image = %q, want new default", a.add.form.Image)
	}

	cfg, err := config.LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Appearance.Theme != "tokyo-night" || cfg.Roster.SeedDefaults {
		t.Errorf("saved config = %+v", cfg)
	}
}

func TestApplySetupKeepsSampleFriends(t *testing.T) {
	setupEnv(t)
	a := newFirstRunApp(t)

	a.applySetup()

	if n := a.store.Len(); n != 3 {
		t.Errorf("roster has %d friends, want 3", n)
	}
}

func TestApplySetupDoesNotSaveEnvOverrides(t *testing.T) {
	setupEnv(t)
	t.Setenv("EATSPLIT_THEME", "terminal")
	t.Setenv("EATSPLIT_DEFAULT_IMAGE", "https://env.test/avatar")

	a := newFirstRunApp(t)
	a.setupVals.Theme = "no-such-theme"
	a.setupVals.DefaultImage = "  "

	a.applySetup()

	cfg, err := config.LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	def := config.DefaultConfig()
	if cfg.Appearance.Theme != def.Appearance.Theme {
		t.Errorf("saved theme = %q, want %q", cfg.Appearance.Theme, def.Appearance.Theme)
	}
	if cfg.Roster.DefaultImage != def.Roster.DefaultImage {
		t.Errorf("saved image = %q, want %q", cfg.Roster.DefaultImage, def.Roster.DefaultImage)
	}
}

func TestApplySetupSaveFailure(t *testing.T) {
	dir := setupEnv(t)
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", blocker)

	a := newFirstRunApp(t)
	a.setupVals.Theme = "catppuccin-mocha"
	a.setupVals.SeedDefaults = false

	a.applySetup()

	if !strings.Contains(a.notice, "not saved") {
		t.Errorf("notice = %q, want a save failure", a.notice)
	}
	if theme.Active.Name != "catppuccin-mocha" {
		t.Error("answers should still apply to the session")
	}
	if a.store.Len() != 0 {
		t.Error("declined sample friends should still clear the roster")
	}
}

func TestSetupCompletedThroughUpdate(t *testing.T) {
	setupEnv(t)
	a := newFirstRunApp(t)
	a.setupVals.SeedDefaults = false
	a.setupForm.State = huh.StateCompleted

	a = send(t, a, runes("x")...)

	if a.needSetup || a.setupForm != nil {
		t.Fatal("wizard should close once completed")
	}
	if a.store.Len() != 0 || a.notice == "" {
		t.Errorf("completion should apply answers: len=%d notice=%q", a.store.Len(), a.notice)
	}
}

func TestSetupAbortedSavesNothing(t *testing.T) {
	setupEnv(t)
	a := newFirstRunApp(t)
	a.setupVals.SeedDefaults = false
	a.setupForm.State = huh.StateAborted

	a = send(t, a, runes("x")...)

	if a.needSetup || a.setupForm != nil {
		t.Fatal("wizard should close once aborted")
	}
	if config.Exists() {
		t.Error("abort should not write a config file")
	}
	if a.store.Len() != 3 || a.notice != "" {
		t.Errorf("abort should leave the app alone: len=%d notice=%q", a.store.Len(), a.notice)
	}

	a = send(t, a, runes("a")...)
	if !a.store.AddFormVisible() {
		t.Error("keys should reach the roster after the wizard closes")
	}
}

func TestSetupValuesApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	SetupValues{
		Theme:        "catppuccin-mocha",
		DefaultImage: " https://img.test/a ",
		SeedDefaults: false,
	}.ApplySetup(&cfg)

	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Roster.DefaultImage != "https://img.test/a" {
		t.Errorf("image = %q, want trimmed", cfg.Roster.DefaultImage)
	}
	if cfg.Roster.SeedDefaults {
		t.Error("seed defaults should follow the answer")
	}

	before := cfg
	SetupValues{Theme: "bogus", DefaultImage: "", SeedDefaults: false}.ApplySetup(&cfg)
	if cfg.Appearance.Theme != before.Appearance.Theme || cfg.Roster.DefaultImage != before.Roster.DefaultImage {
		t.Errorf("invalid answers should be ignored, got %+v", cfg)
	}
}

func TestValidateImageURL(t *testing.T) {
	for _, ok := range []string{"https://i.pravatar.cc/48", " http://x.test/a "} {
		if err := validateImageURL(ok); err != nil {
			t.Errorf("validateImageURL(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "   ", "pravatar.cc/48", "/just/a/path"} {
		if err := validateImageURL(bad); err == nil {
			t.Errorf("validateImageURL(%q) should fail", bad)
		}
	}
}
