package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/crab/frame"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mode is the top-level game mode. Only ModePlaying exists; menus and pausing
// are not implemented.
type Mode int

const (
	ModePlaying Mode = iota
)

func (m Mode) String() string {
	if m == ModePlaying {
		return "playing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ScoreLine is one entry of the on-screen scoreboard.
type ScoreLine struct {
	Text string
	At   r2.Vec
	Size float64
}

// State composes the crab, both players and the snack pool, and sequences
// their per-frame updates.
type State struct {
	cfg     Config
	crab    Crab
	players [2]Player
	snacks  []Snack

	rng   *rand.Rand
	music Sound
	catch Sound

	dt        time.Duration
	mode      Mode
	scheduler *frame.Scheduler
}

type Option func(*State)

// WithRand sets the random source used to spawn snacks.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) {
		s.rng = rng
	}
}

// WithSounds sets the background music and the catch sound. A nil sound is
// replaced by silence.
func WithSounds(music, catch Sound) Option {
	return func(s *State) {
		if music != nil {
			s.music = music
		}
		if catch != nil {
			s.catch = catch
		}
	}
}

// NewState builds the initial game for cfg.
func NewState(cfg Config, opts ...Option) *State {
	s := &State{
		cfg:   cfg,
		music: silence{},
		catch: silence{},
		mode:  ModePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	origin := StartLocation(cfg)
	s.crab = NewCrab(cfg, origin)
	s.players = [2]Player{
		NewPlayer(cfg, origin,
			r2.Vec{X: cfg.ClawWidth - 20, Y: cfg.CrabHeight / 2},
			r2.Vec{X: -30, Y: -20},
			SpriteClawLeft),
		NewPlayer(cfg, origin,
			r2.Vec{X: cfg.CrabWidth + 30, Y: cfg.CrabHeight / 2},
			r2.Vec{X: 170, Y: -20},
			SpriteClawRight),
	}
	s.snacks = SpawnSnacks(cfg, s.rng, cfg.SnackCount)

	s.scheduler = frame.NewScheduler()
	s.scheduler.RegisterNamed("snacks", &snackStep{state: s})
	s.scheduler.RegisterNamed("crab", &crabStep{state: s})
	s.scheduler.RegisterNamed("players", &playerStep{state: s})
	s.scheduler.RegisterNamed("collisions", &collisionStep{state: s})
	s.scheduler.RegisterNamed("music", &musicStep{state: s})

	return s
}

// Update advances the simulation by one frame. dt is recorded but motion is
// per frame, not per second.
func (s *State) Update(dt time.Duration) {
	s.dt = dt
	s.scheduler.Once(dt.Seconds())
}

// Move routes a direction intent to a player's claw.
func (s *State) Move(id PlayerID, d Direction) r2.Vec {
	return s.Player(id).MoveDir(d)
}

// CollisionCheck tests both claws against every snack, scoring each hit for
// the claw that made it. Player 1 is checked first, so a snack within reach of
// both claws goes to Player 1. It returns the number of catches.
func (s *State) CollisionCheck(cmds *frame.Commands) int {
	origins := [2]r2.Vec{
		s.players[Player1].claw.Origin(),
		s.players[Player2].claw.Origin(),
	}

	caught := 0
	for i, origin := range origins {
		for j := range s.snacks {
			if s.snacks[j].CollidesWith(origin) {
				s.players[i].IncreaseScore()
				caught++
				if cmds != nil {
					cmds.Defer(s.catch.Play)
				} else {
					s.catch.Play()
				}
			}
		}
	}
	return caught
}

// Scoreboard returns the score display for both players.
func (s *State) Scoreboard() [2]ScoreLine {
	return [2]ScoreLine{
		{
			Text: fmt.Sprintf("Player 1: #%d", s.players[Player1].score),
			At:   r2.Vec{X: 10, Y: 10},
			Size: s.cfg.ScoreFontSize,
		},
		{
			Text: fmt.Sprintf("Player 2: #%d", s.players[Player2].score),
			At:   r2.Vec{X: s.cfg.ScreenWidth - 180, Y: 10},
			Size: s.cfg.ScoreFontSize,
		},
	}
}

// Draw renders one frame onto canvas.
func (s *State) Draw(canvas Canvas) {
	canvas.Fill(ClearColor)
	canvas.DrawSprite(SpriteBackground, r2.Vec{}, r2.Vec{X: s.cfg.ScreenWidth, Y: s.cfg.ScreenHeight})

	for i := range s.snacks {
		s.snacks[i].Draw(canvas)
	}
	s.crab.Draw(canvas)
	for i := range s.players {
		s.players[i].Draw(canvas, s.cfg.ArmWidth)
	}

	for _, line := range s.Scoreboard() {
		canvas.DrawText(line.Text, line.At, line.Size, ScoreColor)
	}
}

// Player returns the player with the given id. It panics on an unknown id.
func (s *State) Player(id PlayerID) *Player {
	if id < Player1 || id > Player2 {
		panic(fmt.Sprintf("unknown player id %d", int(id)))
	}
	return &s.players[id]
}

func (s *State) Config() Config               { return s.cfg }
func (s *State) Crab() *Crab                  { return &s.crab }
func (s *State) Snacks() []Snack              { return s.snacks }
func (s *State) DeltaTime() time.Duration     { return s.dt }
func (s *State) Mode() Mode                   { return s.mode }
func (s *State) Frames() uint64               { return s.scheduler.Frames() }
func (s *State) Stats() *frame.SchedulerStats { return s.scheduler.Stats() }
