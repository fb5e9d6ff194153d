package game

//go:generate go tool stringer -type=Direction

// Direction is a claw nudge requested by a player.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)
