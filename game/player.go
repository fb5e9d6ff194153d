package game

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// PlayerID indexes the two players.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

func (id PlayerID) String() string {
	return fmt.Sprintf("Player %d", int(id)+1)
}

// Player owns one claw and a score.
type Player struct {
	score  int
	claw   Claw
	sprite Sprite
}

func NewPlayer(cfg Config, crabLocation, bodyAnchor, jointAnchor r2.Vec, sprite Sprite) Player {
	return Player{
		claw:   NewClaw(cfg, crabLocation, bodyAnchor, jointAnchor),
		sprite: sprite,
	}
}

// Update moves the claw along with the crab.
func (p *Player) Update(crabLocation r2.Vec) {
	p.claw.Update(crabLocation)
}

func (p *Player) MoveDir(d Direction) r2.Vec {
	return p.claw.MoveDir(d)
}

func (p *Player) IncreaseScore() {
	p.score++
}

func (p *Player) Score() int     { return p.score }
func (p *Player) Claw() *Claw    { return &p.claw }
func (p *Player) Sprite() Sprite { return p.sprite }

func (p *Player) Draw(canvas Canvas, armWidth float64) {
	p.claw.Draw(canvas, p.sprite, armWidth)
}
