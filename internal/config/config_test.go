package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv(envTheme, "")
	t.Setenv(envDefaultImage, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestRoundTrip(t *testing.T) {
	t.Setenv(envTheme, "")
	t.Setenv(envDefaultImage, "")

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Roster.SeedDefaults = false
	cfg.Roster.Friends = []FriendConfig{
		{ID: "f1", Name: "Dana", Balance: "-12.50"},
	}

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	require.NoError(t, SaveTo(path, cfg))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", got.Appearance.Theme)
	assert.False(t, got.Roster.SeedDefaults)
	require.Len(t, got.Roster.Friends, 1)
	assert.Equal(t, "-12.50", got.Roster.Friends[0].Balance)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance\ntheme ="), 0o600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envTheme, "terminal")
	t.Setenv(envDefaultImage, "https://example.com/avatar")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "https://example.com/avatar", cfg.Roster.DefaultImage)
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	t.Setenv(envTheme, "terminal")
	t.Setenv(envDefaultImage, "https://example.com/avatar")

	path := filepath.Join(t.TempDir(), "config.toml")
	saved := DefaultConfig()
	saved.Appearance.Theme = "tokyo-night"
	require.NoError(t, SaveTo(path, saved))

	cfg, err := LoadFileFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.Equal(t, DefaultConfig().Roster.DefaultImage, cfg.Roster.DefaultImage)

	missing, err := LoadFileFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), missing)

	withEnv, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "terminal", withEnv.Appearance.Theme)
}

func TestPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "eatsplit", "config.toml"), Path())
	assert.False(t, Exists())
}

func TestSeedFriendsDefaults(t *testing.T) {
	friends, err := SeedFriends(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, friends, 3)
	assert.Equal(t, "Clark", friends[0].Name)
	assert.Equal(t, "118836", friends[0].ID)
	for _, f := range friends {
		assert.True(t, f.Balance.IsZero())
	}
}

func TestSeedFriendsConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roster.Friends = []FriendConfig{
		{Name: "Dana", Balance: "15"},
		{ID: "x1", Name: "Eve", Image: "https://example.com/eve.png", Balance: "-3.25"},
	}

	friends, err := SeedFriends(cfg)
	require.NoError(t, err)
	require.Len(t, friends, 5)

	dana := friends[3]
	assert.NotEmpty(t, dana.ID)
	assert.Equal(t, "https://i.pravatar.cc/48?="+dana.ID, dana.Image)
	assert.Equal(t, "15", dana.Balance.String())

	eve := friends[4]
	assert.Equal(t, "https://example.com/eve.png", eve.Image)
	assert.Equal(t, "-3.25", eve.Balance.String())
}

func TestSeedFriendsErrors(t *testing.T) {
	tests := []struct {
		name    string
		friends []FriendConfig
		want    string
	}{
		{"duplicate id", []FriendConfig{{ID: "118836", Name: "Clone"}}, "duplicate id"},
		{"missing name", []FriendConfig{{ID: "a"}}, "missing name"},
		{"bad balance", []FriendConfig{{Name: "Dana", Balance: "lots"}}, "balance"},
		{"exponent balance", []FriendConfig{{Name: "Dana", Balance: "1e999999995"}}, "not a plain decimal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Roster.Friends = tt.friends
			_, err := SeedFriends(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
