package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/crab/frame"
	"github.com/plus3/crab/game"
)

var directions = [...]game.Direction{game.Up, game.Down, game.Left, game.Right}

// countingSound is a silent game.Sound that counts plays. It reports itself
// as playing once started, like a looping music track.
type countingSound struct {
	plays   int
	playing bool
}

func (s *countingSound) IsPlaying() bool { return s.playing }

func (s *countingSound) Play() {
	s.plays++
	s.playing = true
}

// oneShot never stays playing, so every catch plays again.
type oneShot struct {
	countingSound
}

func (s *oneShot) Play() { s.plays++ }

// soak drives a game.State headless, pressing random keys along the way.
type soak struct {
	state      *game.State
	rng        *rand.Rand
	inputEvery uint64
	music      *countingSound
	catch      *oneShot
	presses    [2]int
}

func newSoak(cfg game.Config, seed uint64, inputEvery uint64) *soak {
	s := &soak{
		rng:        rand.New(rand.NewPCG(seed, seed^0x5eed)),
		inputEvery: inputEvery,
		music:      &countingSound{},
		catch:      &oneShot{},
	}
	s.state = game.NewState(cfg,
		game.WithRand(rand.New(rand.NewPCG(seed, seed+1))),
		game.WithSounds(s.music, s.catch))
	return s
}

// driver returns the scheduler that feeds input and advances the game.
func (s *soak) driver() *frame.Scheduler {
	d := frame.NewScheduler()
	d.RegisterNamed("input", frame.SystemFunc(s.press))
	d.RegisterNamed("update", frame.SystemFunc(func(f *frame.Frame) {
		s.state.Update(time.Duration(f.DeltaTime * float64(time.Second)))
	}))
	return d
}

func (s *soak) press(f *frame.Frame) {
	if s.inputEvery == 0 || f.Index%s.inputEvery != 0 {
		return
	}
	id := game.PlayerID(s.rng.IntN(2))
	s.state.Move(id, directions[s.rng.IntN(len(directions))])
	s.presses[id]++
}
