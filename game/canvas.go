package game

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

//go:generate go tool stringer -type=Sprite -trimprefix=Sprite

// Sprite identifies one of the pre-decoded images supplied by a frontend.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteCrab
	SpriteClawLeft
	SpriteClawRight
	SpriteSnack
)

// NumSprites is the number of Sprite values.
const NumSprites = int(SpriteSnack) + 1

var (
	ArmColor   = color.RGBA{R: 255, A: 255}
	ClearColor = color.White
	ScoreColor = color.Black
)

// Canvas is the rendering collaborator. Points are in screen pixels with the
// origin at the top-left corner.
type Canvas interface {
	Fill(c color.Color)
	// DrawSprite draws s with its top-left corner at at, scaled to size.
	DrawSprite(s Sprite, at r2.Vec, size r2.Vec)
	DrawLine(from, to r2.Vec, width float64, c color.Color)
	DrawText(text string, at r2.Vec, size float64, c color.Color)
}

// Sound is an audio source the game can poll and start.
type Sound interface {
	IsPlaying() bool
	Play()
}

type silence struct{}

func (silence) IsPlaying() bool { return false }
func (silence) Play()           {}
