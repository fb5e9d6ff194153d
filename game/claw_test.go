package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestClaw() Claw {
	return NewClaw(DefaultConfig(), r2.Vec{X: 350, Y: 450}, r2.Vec{X: 15, Y: 75}, r2.Vec{X: -30, Y: -20})
}

func TestClawUpdateMirrorsParent(t *testing.T) {
	claw := newTestClaw()

	for _, p := range []r2.Vec{{X: 0, Y: 0}, {X: 351.5, Y: 450}, {X: -12.25, Y: 1e6}} {
		claw.Update(p)
		assert.Equal(t, p, claw.Location())
	}
}

func TestClawOrigin(t *testing.T) {
	claw := newTestClaw()

	// 350 + -30 - 35/2, 450 + -20 - 50
	assert.Equal(t, r2.Vec{X: 302.5, Y: 380}, claw.Origin())

	claw.Update(r2.Vec{X: 100, Y: 100})
	assert.Equal(t, r2.Vec{X: 52.5, Y: 30}, claw.Origin())
}

func TestClawMoveDir(t *testing.T) {
	tests := []struct {
		dir  Direction
		want r2.Vec
	}{
		{Up, r2.Vec{X: -30, Y: -50}},
		{Down, r2.Vec{X: -30, Y: 10}},
		{Left, r2.Vec{X: -60, Y: -20}},
		{Right, r2.Vec{X: 0, Y: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			claw := newTestClaw()
			before := claw.JointAnchor()

			got := claw.MoveDir(tt.dir)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, claw.JointAnchor())

			delta := r2.Sub(got, before)
			changed := 0
			if delta.X != 0 {
				changed++
				assert.Equal(t, 30.0, abs(delta.X))
			}
			if delta.Y != 0 {
				changed++
				assert.Equal(t, 30.0, abs(delta.Y))
			}
			assert.Equal(t, 1, changed, "exactly one axis must change")
			assert.Equal(t, r2.Vec{X: 15, Y: 75}, claw.BodyAnchor())
		})
	}
}

func TestClawMoveDirIsUnbounded(t *testing.T) {
	claw := newTestClaw()
	for range 1000 {
		claw.MoveDir(Left)
	}
	assert.Equal(t, -30.0-1000*30, claw.JointAnchor().X)
}

func TestClawDraw(t *testing.T) {
	claw := newTestClaw()
	canvas := &recordingCanvas{}

	claw.Draw(canvas, SpriteClawLeft, 10)

	assert.Equal(t, []string{
		"line (365,525)->(320,430) w=10",
		"sprite ClawLeft at (302.5,380) size (35,50)",
	}, canvas.calls)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Up", Up.String())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
	assert.Equal(t, "ClawRight", fmt.Sprint(SpriteClawRight))
}
