package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCrabStartLocation(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, r2.Vec{X: 350, Y: 450}, StartLocation(cfg))

	crab := NewCrab(cfg, StartLocation(cfg))
	assert.Equal(t, r2.Vec{X: 1.5}, crab.Velocity())
}

func TestCrabTurnsAtRightThreshold(t *testing.T) {
	cfg := DefaultConfig()
	crab := NewCrab(cfg, StartLocation(cfg))

	prev := crab.Location().X
	for crab.Velocity().X > 0 {
		crab.Update(cfg.ScreenWidth)
		x := crab.Location().X
		require.Greater(t, x, prev)
		prev = x
		require.Less(t, prev, 1000.0, "crab never turned")
	}

	// The flip happens on the first update where x+2w >= 800.
	assert.GreaterOrEqual(t, prev+2*cfg.CrabWidth, cfg.ScreenWidth)
	assert.Less(t, prev-cfg.CrabStep+2*cfg.CrabWidth, cfg.ScreenWidth)
	assert.Equal(t, 600.5, prev)
	assert.Equal(t, -1.5, crab.Velocity().X)

	crab.Update(cfg.ScreenWidth)
	assert.Less(t, crab.Location().X, prev)
	assert.Zero(t, crab.Velocity().Y)
	assert.Equal(t, 450.0, crab.Location().Y)
}

func TestCrabOscillation(t *testing.T) {
	cfg := DefaultConfig()
	crab := NewCrab(cfg, r2.Vec{X: 50, Y: 450})

	// From x < w the crab walks right until x+2w >= max.
	prev := crab.Location().X
	for crab.Velocity().X > 0 {
		crab.Update(cfg.ScreenWidth)
		require.Greater(t, crab.Location().X, prev)
		prev = crab.Location().X
	}
	assert.GreaterOrEqual(t, prev+2*cfg.CrabWidth, cfg.ScreenWidth)

	// Then walks left until x < w, not until some shared midpoint.
	for crab.Velocity().X < 0 {
		crab.Update(cfg.ScreenWidth)
		require.Less(t, crab.Location().X, prev)
		prev = crab.Location().X
	}
	assert.Less(t, prev, cfg.CrabWidth)
	assert.GreaterOrEqual(t, prev+cfg.CrabStep, cfg.CrabWidth)
	assert.Equal(t, 1.5, crab.Velocity().X)
}

func TestCrabDraw(t *testing.T) {
	cfg := DefaultConfig()
	crab := NewCrab(cfg, StartLocation(cfg))
	canvas := &recordingCanvas{}

	crab.Draw(canvas)

	assert.Equal(t, []string{"sprite Crab at (350,450) size (100,150)"}, canvas.calls)
}
