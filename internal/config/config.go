package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all eatsplit configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Roster     RosterConfig     `toml:"roster"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// RosterConfig controls the roster the app starts with.
type RosterConfig struct {
	DefaultImage string         `toml:"default_image"`
	SeedDefaults bool           `toml:"seed_defaults"`
	Friends      []FriendConfig `toml:"friends,omitempty"`
}

// FriendConfig is one configured starting friend. Balance is a decimal
// string so money values survive the round trip exactly.
type FriendConfig struct {
	ID      string `toml:"id,omitempty"`
	Name    string `toml:"name"`
	Image   string `toml:"image,omitempty"`
	Balance string `toml:"balance,omitempty"`
}

const (
	envTheme        = "EATSPLIT_THEME"
	envDefaultImage = "EATSPLIT_DEFAULT_IMAGE"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Roster: RosterConfig{
			DefaultImage: "https://i.pravatar.cc/48",
			SeedDefaults: true,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eatsplit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eatsplit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadEnv reads a .env file from the working directory into the process
// environment, if there is one. Existing variables win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path and applies environment overrides.
// A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg, err := LoadFileFrom(path)
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads only what is on disk, without environment overrides.
// Use it when the result will be saved back.
func LoadFile() (Config, error) {
	return LoadFileFrom(Path())
}

// LoadFileFrom reads the config at path over the defaults.
func LoadFileFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(envDefaultImage); v != "" {
		cfg.Roster.DefaultImage = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
