package game

import "github.com/plus3/crab/frame"

// The per-frame steps, registered by NewState in this order.

type snackStep struct {
	state *State
}

func (st *snackStep) Execute(f *frame.Frame) {
	s := st.state
	for i := range s.snacks {
		s.snacks[i].Update(s.cfg, s.rng)
	}
}

type crabStep struct {
	state *State
}

func (st *crabStep) Execute(f *frame.Frame) {
	st.state.crab.Update(st.state.cfg.ScreenWidth)
}

type playerStep struct {
	state *State
}

func (st *playerStep) Execute(f *frame.Frame) {
	s := st.state
	loc := s.crab.Location()
	for i := range s.players {
		s.players[i].Update(loc)
	}
}

type collisionStep struct {
	state *State
}

func (st *collisionStep) Execute(f *frame.Frame) {
	st.state.CollisionCheck(f.Commands)
}

// musicStep restarts the background music whenever it is not playing.
type musicStep struct {
	state *State
}

func (st *musicStep) Execute(f *frame.Frame) {
	if !st.state.music.IsPlaying() {
		st.state.music.Play()
	}
}
