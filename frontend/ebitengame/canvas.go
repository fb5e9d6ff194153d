package ebitengame

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/crab/game"
	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas draws game frames onto an ebiten screen image.
type Canvas struct {
	screen  *ebiten.Image
	sprites [game.NumSprites]*ebiten.Image
	font    *text.GoTextFaceSource
}

func NewCanvas(res *Resources) *Canvas {
	return &Canvas{
		sprites: res.Sprites,
		font:    res.Font,
	}
}

// Target sets the image the next frame is drawn onto.
func (c *Canvas) Target(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) Fill(clr color.Color) {
	c.screen.Fill(clr)
}

func (c *Canvas) DrawSprite(s game.Sprite, at r2.Vec, size r2.Vec) {
	img := c.sprites[s]
	if img == nil {
		panic("sprite not loaded: " + s.String())
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(b.Dx(), b.Dy(), at, size)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(img, op)
}

func (c *Canvas) DrawLine(from, to r2.Vec, width float64, clr color.Color) {
	vector.StrokeLine(c.screen,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		float32(width), clr, true)
}

func (c *Canvas) DrawText(s string, at r2.Vec, size float64, clr color.Color) {
	face := &text.GoTextFace{Source: c.font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, face, op)
}

// spriteGeoM scales a w×h image to size and moves its top-left corner to at.
func spriteGeoM(w, h int, at, size r2.Vec) ebiten.GeoM {
	var m ebiten.GeoM
	if w > 0 && h > 0 {
		m.Scale(size.X/float64(w), size.Y/float64(h))
	}
	m.Translate(at.X, at.Y)
	return m
}
