package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewSnack(t *testing.T) {
	cfg := DefaultConfig()
	rng := newTestRand()

	for range 500 {
		snack := NewSnack(cfg, rng)

		assert.True(t, snack.Active())
		assert.GreaterOrEqual(t, snack.Location().X, 0.0)
		assert.Less(t, snack.Location().X, cfg.ScreenWidth)
		assert.Less(t, snack.Location().Y, 0.0, "snacks spawn above the screen")
		assert.Zero(t, snack.Velocity().X)
		assert.GreaterOrEqual(t, snack.Velocity().Y, 0.1)
		assert.Less(t, snack.Velocity().Y, 2.1)
		assert.Equal(t, 40.0, snack.Width())
	}
}

func TestSnackUpdateFalls(t *testing.T) {
	cfg := DefaultConfig()
	snack := Snack{location: r2.Vec{X: 10, Y: 100}, velocity: r2.Vec{Y: 2}, w: 40, active: true}

	snack.Update(cfg, newTestRand())

	assert.Equal(t, r2.Vec{X: 10, Y: 102}, snack.Location())
	assert.True(t, snack.Active())
}

func TestSnackRespawnsOffScreen(t *testing.T) {
	cfg := DefaultConfig()
	snack := Snack{location: r2.Vec{X: 10, Y: 599}, velocity: r2.Vec{Y: 2}, w: 40, active: true}

	snack.Update(cfg, newTestRand())

	assert.True(t, snack.Active())
	assert.Equal(t, -40.0, snack.Location().Y)
	assert.GreaterOrEqual(t, snack.Velocity().Y, 0.1)
	assert.Less(t, snack.Velocity().Y, 2.1)
}

func TestSnackAtBottomEdgeIsStillOnScreen(t *testing.T) {
	cfg := DefaultConfig()
	snack := Snack{location: r2.Vec{X: 10, Y: 598}, velocity: r2.Vec{Y: 2}, w: 40, active: true}

	snack.Update(cfg, newTestRand())

	assert.Equal(t, 600.0, snack.Location().Y)
}

func TestSnackCollidesWith(t *testing.T) {
	t.Run("hit consumes the snack", func(t *testing.T) {
		snack := Snack{location: r2.Vec{X: 100, Y: 100}, velocity: r2.Vec{Y: 1}, w: 40, active: true}

		require.True(t, snack.CollidesWith(r2.Vec{X: 100, Y: 100}))
		assert.False(t, snack.Active())
		assert.False(t, snack.CollidesWith(r2.Vec{X: 100, Y: 100}), "second call before update must miss")
	})

	t.Run("radius is exclusive", func(t *testing.T) {
		snack := Snack{location: r2.Vec{X: 100, Y: 100}, w: 40, active: true}

		assert.False(t, snack.CollidesWith(r2.Vec{X: 140, Y: 100}))
		assert.True(t, snack.Active())
		assert.True(t, snack.CollidesWith(r2.Vec{X: 124, Y: 131.9}))
	})

	t.Run("miss leaves snack active", func(t *testing.T) {
		snack := Snack{location: r2.Vec{X: 100, Y: 100}, w: 40, active: true}

		assert.False(t, snack.CollidesWith(r2.Vec{X: 500, Y: 500}))
		assert.True(t, snack.Active())
	})

	t.Run("caught snack respawns on next update", func(t *testing.T) {
		cfg := DefaultConfig()
		snack := Snack{location: r2.Vec{X: 100, Y: 100}, velocity: r2.Vec{Y: 1}, w: 40, active: true}
		require.True(t, snack.CollidesWith(r2.Vec{X: 100, Y: 100}))

		snack.Update(cfg, newTestRand())

		assert.True(t, snack.Active())
		assert.Equal(t, -40.0, snack.Location().Y)
	})
}

func TestSnacksAlwaysActiveBetweenTicks(t *testing.T) {
	cfg := DefaultConfig()
	rng := newTestRand()
	snacks := SpawnSnacks(cfg, rng, cfg.SnackCount)

	for range 2000 {
		for i := range snacks {
			snacks[i].Update(cfg, rng)
			require.True(t, snacks[i].Active())
		}
	}
	assert.Len(t, snacks, 15)
}

func TestSnackDraw(t *testing.T) {
	active := Snack{location: r2.Vec{X: 5, Y: 6}, w: 40, active: true}
	inactive := Snack{location: r2.Vec{X: 5, Y: 6}, w: 40}
	canvas := &recordingCanvas{}

	active.Draw(canvas)
	inactive.Draw(canvas)

	assert.Equal(t, []string{"sprite Snack at (5,6) size (40,40)"}, canvas.calls)
}
