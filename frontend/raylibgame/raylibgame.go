// Package raylibgame runs the crab game on raylib.
package raylibgame

import (
	"image/color"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/plus3/crab/assets"
	"github.com/plus3/crab/config"
	"github.com/plus3/crab/game"
	"github.com/plus3/crab/input"
	"gonum.org/v1/gonum/spatial/r2"
)

const targetFPS = 60

// fontBaseSize is the size the font atlas is rasterised at.
const fontBaseSize = 64

// Keys is the raylib key layout for the default bindings.
var Keys = input.Layout[int32]{
	W: rl.KeyW, A: rl.KeyA, S: rl.KeyS, D: rl.KeyD,
	I: rl.KeyI, J: rl.KeyJ, K: rl.KeyK, L: rl.KeyL,
}

// Canvas draws through the raylib immediate-mode API. It must be used between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	textures [game.NumSprites]rl.Texture2D
	font     rl.Font
}

func (c *Canvas) Fill(clr color.Color) {
	rl.ClearBackground(toRGBA(clr))
}

func (c *Canvas) DrawSprite(s game.Sprite, at r2.Vec, size r2.Vec) {
	tex := c.textures[s]
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(at.X), float32(at.Y), float32(size.X), float32(size.Y))
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

func (c *Canvas) DrawLine(from, to r2.Vec, width float64, clr color.Color) {
	rl.DrawLineEx(toVector2(from), toVector2(to), float32(width), toRGBA(clr))
}

func (c *Canvas) DrawText(text string, at r2.Vec, size float64, clr color.Color) {
	rl.DrawTextEx(c.font, text, toVector2(at), float32(size), 1, toRGBA(clr))
}

func toVector2(v r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Music streams the background track. raylib needs the stream fed every frame.
type Music struct {
	stream rl.Music
}

func (m *Music) IsPlaying() bool { return rl.IsMusicStreamPlaying(m.stream) }
func (m *Music) Play()           { rl.PlayMusicStream(m.stream) }
func (m *Music) update()         { rl.UpdateMusicStream(m.stream) }

// Sound is a one-shot effect.
type Sound struct {
	sound rl.Sound
}

func (s *Sound) IsPlaying() bool { return rl.IsSoundPlaying(s.sound) }
func (s *Sound) Play()           { rl.PlaySound(s.sound) }

type resources struct {
	canvas *Canvas
	music  *Music
	catch  *Sound
}

func load(dir string) (res *resources, err error) {
	if err := assets.Check(os.DirFS(dir)); err != nil {
		return nil, err
	}

	res = &resources{canvas: &Canvas{}, music: &Music{}, catch: &Sound{}}
	defer func() {
		if err != nil {
			res.unload()
			res = nil
		}
	}()

	c := res.canvas
	for i := range c.textures {
		name := assets.SpriteFile(game.Sprite(i))
		c.textures[i] = rl.LoadTexture(assets.Path(dir, name))
		if c.textures[i].ID == 0 {
			return res, errors.Errorf("load asset %s: texture upload failed", name)
		}
	}

	c.font = rl.LoadFontEx(assets.Path(dir, assets.Font), fontBaseSize, nil)
	if c.font.Texture.ID == 0 {
		return res, errors.Errorf("load asset %s: font atlas upload failed", assets.Font)
	}

	res.music.stream = rl.LoadMusicStream(assets.Path(dir, assets.Music))
	if res.music.stream.FrameCount == 0 {
		return res, errors.Errorf("load asset %s: no audio frames", assets.Music)
	}

	res.catch.sound = rl.LoadSound(assets.Path(dir, assets.CatchSound))
	if res.catch.sound.FrameCount == 0 {
		return res, errors.Errorf("load asset %s: no audio frames", assets.CatchSound)
	}
	return res, nil
}

// unload releases every handle that was loaded. Zero handles are skipped.
func (r *resources) unload() {
	for _, tex := range r.canvas.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	if r.canvas.font.Texture.ID != 0 {
		rl.UnloadFont(r.canvas.font)
	}
	if r.music.stream.FrameCount != 0 {
		rl.UnloadMusicStream(r.music.stream)
	}
	if r.catch.sound.FrameCount != 0 {
		rl.UnloadSound(r.catch.sound)
	}
}

// Run opens the window and blocks until it is closed.
func Run(settings config.Settings) error {
	cfg := settings.Game
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), settings.WindowTitle)
	defer rl.CloseWindow()
	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	rl.SetTargetFPS(targetFPS)

	res, err := load(settings.AssetDir)
	if err != nil {
		return err
	}
	defer res.unload()

	state := game.NewState(cfg, game.WithSounds(res.music, res.catch))
	keymap := input.DefaultKeymap(Keys)

	for !rl.WindowShouldClose() {
		keymap.Each(func(key int32, _ input.Action) bool {
			if rl.IsKeyReleased(key) {
				keymap.Dispatch(key, state)
			}
			return true
		})

		res.music.update()
		state.Update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))

		rl.BeginDrawing()
		state.Draw(res.canvas)
		rl.EndDrawing()
	}
	return nil
}
