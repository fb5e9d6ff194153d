package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/crab/config"
	"github.com/plus3/crab/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the game variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAssetDir, config.EnvDebugUI, config.EnvWindowTitle} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), s)
	assert.Equal(t, game.DefaultConfig(), s.Game)
	assert.Equal(t, 800.0, s.Game.ScreenWidth)
	assert.Equal(t, 600.0, s.Game.ScreenHeight)
	assert.Equal(t, 15, s.Game.SnackCount)
	assert.Equal(t, "resources", s.AssetDir)
	assert.False(t, s.DebugUI)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAssetDir, "/opt/crab")
	t.Setenv(config.EnvDebugUI, "true")
	t.Setenv(config.EnvWindowTitle, "Snap!")

	s, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/opt/crab", s.AssetDir)
	assert.True(t, s.DebugUI)
	assert.Equal(t, "Snap!", s.WindowTitle)
	assert.Equal(t, game.DefaultConfig(), s.Game, "gameplay constants are not configurable")
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "crab.env")
	require.NoError(t, os.WriteFile(path, []byte("CRAB_ASSET_DIR=assets\nCRAB_DEBUG_UI=1\n"), 0o644))

	// The process environment wins over the file.
	t.Setenv(config.EnvDebugUI, "false")

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "assets", s.AssetDir)
	assert.False(t, s.DebugUI)
}

func TestLoadInvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvDebugUI, "sometimes")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvDebugUI)
}
