package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/eatsplit/internal/logging"
)

func TestRunClosesLogFileOnError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "eatsplit")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[appearance\ntheme = "), 0o600); err != nil {
		t.Fatal(err)
	}

	logPath := filepath.Join(dir, "eatsplit.log")
	t.Cleanup(func() {
		flagLogFile = ""
		logging.Discard()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--log-file", logPath, "config"})

	if err := run(); err == nil {
		t.Fatal("config with a broken file should fail")
	}
	if logFile != nil {
		t.Error("log file should be closed after a failed command")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
