// Package assets names the files the frontends load at startup.
package assets

import (
	"io/fs"
	"path"

	"github.com/pkg/errors"
	"github.com/plus3/crab/game"
)

// File names relative to the asset directory.
const (
	Background = "background.png"
	Crab       = "crab.png"
	ClawLeft   = "claw_left.png"
	ClawRight  = "claw_right.png"
	Snack      = "snack.png"
	Font       = "Airstream.ttf"
	Music      = "background.ogg"
	CatchSound = "snap.wav"
)

var spriteFiles = [game.NumSprites]string{
	game.SpriteBackground: Background,
	game.SpriteCrab:       Crab,
	game.SpriteClawLeft:   ClawLeft,
	game.SpriteClawRight:  ClawRight,
	game.SpriteSnack:      Snack,
}

// SpriteFile returns the image file for s. It panics for an unknown sprite.
func SpriteFile(s game.Sprite) string {
	if s < 0 || int(s) >= len(spriteFiles) {
		panic("unknown sprite " + s.String())
	}
	return spriteFiles[s]
}

// Manifest lists every file a frontend needs.
func Manifest() []string {
	files := make([]string, 0, len(spriteFiles)+3)
	files = append(files, spriteFiles[:]...)
	return append(files, Font, Music, CatchSound)
}

// ReadFile reads name from fsys, naming the asset in the error.
func ReadFile(fsys fs.FS, name string) ([]byte, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "load asset %s", name)
	}
	return b, nil
}

// Check reports the first manifest file missing from fsys.
func Check(fsys fs.FS) error {
	for _, name := range Manifest() {
		if _, err := fs.Stat(fsys, name); err != nil {
			return errors.Wrapf(err, "load asset %s", name)
		}
	}
	return nil
}

// Path joins dir and name for frontends that load by file path.
func Path(dir, name string) string {
	return path.Join(dir, name)
}
