// Package config loads the process settings the game reads once at startup.
// Gameplay dimensions are fixed by game.DefaultConfig; only the asset
// location, the window title and the debug overlay come from the environment.
package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/plus3/crab/game"
)

const (
	EnvAssetDir    = "CRAB_ASSET_DIR"
	EnvDebugUI     = "CRAB_DEBUG_UI"
	EnvWindowTitle = "CRAB_WINDOW_TITLE"
)

// Settings is immutable after Load returns.
type Settings struct {
	Game        game.Config
	AssetDir    string
	WindowTitle string
	DebugUI     bool
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Game:        game.DefaultConfig(),
		AssetDir:    "resources",
		WindowTitle: "Crab",
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and builds Settings from it. Missing files are skipped;
// variables already set in the environment win over file values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, errors.Wrapf(err, "load env file %s", f)
		}
	}

	s := Default()
	if v := os.Getenv(EnvAssetDir); v != "" {
		s.AssetDir = v
	}
	if v := os.Getenv(EnvWindowTitle); v != "" {
		s.WindowTitle = v
	}
	if v := os.Getenv(EnvDebugUI); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "parse %s", EnvDebugUI)
		}
		s.DebugUI = on
	}
	return s, nil
}
