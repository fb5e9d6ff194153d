// Package ebitengame runs the crab game on Ebiten.
package ebitengame

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/plus3/crab/config"
	"github.com/plus3/crab/debugui"
	debugui_ebiten "github.com/plus3/crab/debugui/ebiten"
	"github.com/plus3/crab/frame"
	"github.com/plus3/crab/game"
	"github.com/plus3/crab/input"
)

const historyFrames = 120

// Keys is the ebiten key layout for the default bindings.
var Keys = input.Layout[ebiten.Key]{
	W: ebiten.KeyW, A: ebiten.KeyA, S: ebiten.KeyS, D: ebiten.KeyD,
	I: ebiten.KeyI, J: ebiten.KeyJ, K: ebiten.KeyK, L: ebiten.KeyL,
}

// Game implements ebiten.Game around a game.State.
type Game struct {
	state  *game.State
	keymap *input.Keymap[ebiten.Key]
	canvas *Canvas
	keys   []ebiten.Key
	last   time.Time

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
	ui           *frame.Scheduler
	uiInput      debugui.InputState
}

// New loads resources from the configured asset directory, opens audio and
// builds the game. The debug overlay is attached when enabled in settings.
func New(settings config.Settings) (*Game, error) {
	res, err := LoadResources(os.DirFS(settings.AssetDir))
	if err != nil {
		return nil, err
	}

	music, catch, err := NewSounds(audio.NewContext(sampleRate), res)
	if err != nil {
		return nil, err
	}

	g := &Game{
		state:  game.NewState(settings.Game, game.WithSounds(music, catch)),
		keymap: input.DefaultKeymap(Keys),
		canvas: NewCanvas(res),
		last:   time.Now(),
	}

	width, height := int(settings.Game.ScreenWidth), int(settings.Game.ScreenHeight)
	if settings.DebugUI {
		g.imguiBackend = debugui_ebiten.NewImguiBackend(settings.WindowTitle, width, height)
		g.overlay = debugui.NewOverlay(g.state, historyFrames)
		g.ui = frame.NewScheduler()
		g.ui.RegisterNamed("imgui", &debugui.System{Items: g.overlay.Items(), Input: &g.uiInput})
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(settings.WindowTitle)

	return g, nil
}

func (g *Game) State() *game.State { return g.state }

func (g *Game) Update() error {
	if !g.uiInput.WantCaptureKeyboard &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		g.ui.Once(dt.Seconds())
		g.imguiBackend.EndFrame()
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	if !g.uiInput.WantCaptureKeyboard {
		for _, k := range g.keys {
			g.keymap.Dispatch(k, g.state)
		}
	}

	if g.overlay != nil && g.overlay.Paused() {
		return nil
	}
	g.state.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.state.Draw(g.canvas)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.state.Config()
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return int(cfg.ScreenWidth), int(cfg.ScreenHeight)
}

// Run opens the window and blocks until it is closed.
func Run(settings config.Settings) error {
	g, err := New(settings)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
