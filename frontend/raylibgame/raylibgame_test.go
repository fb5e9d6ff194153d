package raylibgame

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/crab/assets"
	"github.com/plus3/crab/game"
	"github.com/plus3/crab/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, toRGBA(game.ArmColor))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, toRGBA(game.ClearColor))
	assert.Equal(t, color.RGBA{A: 255}, toRGBA(game.ScoreColor))
}

func TestToVector2(t *testing.T) {
	assert.Equal(t, rl.Vector2{X: 302.5, Y: 380}, toVector2(r2.Vec{X: 302.5, Y: 380}))
}

func TestKeys(t *testing.T) {
	km := input.DefaultKeymap(Keys)
	assert.Equal(t, 8, km.Len())

	a, ok := km.Lookup(rl.KeyJ)
	assert.True(t, ok)
	assert.Equal(t, input.Action{Player: game.Player2, Dir: game.Left}, a)
}

func TestLoadMissingAssets(t *testing.T) {
	res, err := load(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "load asset "+assets.Background)
}
