package game

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// recordingCanvas records draw calls as strings.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) Fill(col color.Color) {
	c.calls = append(c.calls, "fill")
}

func (c *recordingCanvas) DrawSprite(s Sprite, at r2.Vec, size r2.Vec) {
	c.calls = append(c.calls, fmt.Sprintf("sprite %s at (%g,%g) size (%g,%g)", s, at.X, at.Y, size.X, size.Y))
}

func (c *recordingCanvas) DrawLine(from, to r2.Vec, width float64, col color.Color) {
	c.calls = append(c.calls, fmt.Sprintf("line (%g,%g)->(%g,%g) w=%g", from.X, from.Y, to.X, to.Y, width))
}

func (c *recordingCanvas) DrawText(text string, at r2.Vec, size float64, col color.Color) {
	c.calls = append(c.calls, fmt.Sprintf("text %q at (%g,%g) size %g", text, at.X, at.Y, size))
}

// countingSound counts how often it was started. playing controls IsPlaying.
type countingSound struct {
	playing bool
	plays   int
}

func (s *countingSound) IsPlaying() bool { return s.playing }
func (s *countingSound) Play()           { s.plays++ }
