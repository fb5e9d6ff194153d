// Package input maps a frontend's integer key codes to claw movements.
package input

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/crab/game"
)

// Action is what a bound key does: move one player's claw one step.
type Action struct {
	Player game.PlayerID
	Dir    game.Direction
}

// Banner is the control help printed when a game window opens.
var Banner = []string{
	"Play Crab!",
	"Player 1, use WASD!",
	"Player 2, use IJKL!",
	"Have fun!",
}

// Layout names the frontend key codes for the eight game keys.
type Layout[C intmap.IntKey] struct {
	W, A, S, D C
	I, J, K, L C
}

// Keymap binds key codes to actions.
type Keymap[C intmap.IntKey] struct {
	bindings *intmap.Map[C, Action]
}

// NewKeymap returns an empty keymap.
func NewKeymap[C intmap.IntKey]() *Keymap[C] {
	return &Keymap[C]{
		bindings: intmap.New[C, Action](8),
	}
}

// DefaultKeymap binds WASD to Player 1 and IJKL to Player 2.
func DefaultKeymap[C intmap.IntKey](l Layout[C]) *Keymap[C] {
	m := NewKeymap[C]()
	m.Bind(l.W, Action{game.Player1, game.Up})
	m.Bind(l.A, Action{game.Player1, game.Left})
	m.Bind(l.S, Action{game.Player1, game.Down})
	m.Bind(l.D, Action{game.Player1, game.Right})
	m.Bind(l.I, Action{game.Player2, game.Up})
	m.Bind(l.J, Action{game.Player2, game.Left})
	m.Bind(l.K, Action{game.Player2, game.Down})
	m.Bind(l.L, Action{game.Player2, game.Right})
	return m
}

// Bind sets the action for key, replacing any previous binding.
func (m *Keymap[C]) Bind(key C, a Action) {
	m.bindings.Put(key, a)
}

// Lookup returns the action bound to key.
func (m *Keymap[C]) Lookup(key C) (Action, bool) {
	return m.bindings.Get(key)
}

func (m *Keymap[C]) Len() int {
	return m.bindings.Len()
}

// Each calls fn for every binding until fn returns false. Order is unspecified.
func (m *Keymap[C]) Each(fn func(key C, a Action) bool) {
	m.bindings.ForEach(fn)
}

// Dispatch applies the action bound to key, if any, and reports whether the
// key was bound.
func (m *Keymap[C]) Dispatch(key C, s *game.State) bool {
	a, ok := m.bindings.Get(key)
	if !ok {
		return false
	}
	s.Move(a.Player, a.Dir)
	return true
}
