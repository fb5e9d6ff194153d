package assets_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/plus3/crab/assets"
	"github.com/plus3/crab/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, name := range assets.Manifest() {
		fsys[name] = &fstest.MapFile{Data: []byte(name)}
	}
	return fsys
}

func TestManifest(t *testing.T) {
	files := assets.Manifest()

	assert.Len(t, files, game.NumSprites+3)
	assert.Contains(t, files, "crab.png")
	assert.Contains(t, files, "Airstream.ttf")
	assert.Contains(t, files, "background.ogg")
	assert.Contains(t, files, "snap.wav")
}

func TestSpriteFile(t *testing.T) {
	assert.Equal(t, "claw_left.png", assets.SpriteFile(game.SpriteClawLeft))
	assert.Equal(t, "snack.png", assets.SpriteFile(game.SpriteSnack))
	assert.Panics(t, func() { assets.SpriteFile(game.Sprite(99)) })
}

func TestReadFile(t *testing.T) {
	b, err := assets.ReadFile(fullFS(), assets.Crab)
	require.NoError(t, err)
	assert.Equal(t, []byte("crab.png"), b)

	_, err = assets.ReadFile(fstest.MapFS{}, assets.Crab)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "load asset crab.png")
}

func TestCheck(t *testing.T) {
	fsys := fullFS()
	require.NoError(t, assets.Check(fsys))

	delete(fsys, assets.Font)
	err := assets.Check(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), assets.Font)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "resources/crab.png", assets.Path("resources", assets.Crab))
}
