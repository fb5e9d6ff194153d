package game

import "gonum.org/v1/gonum/spatial/r2"

// Claw is a player-controlled appendage hanging off the crab. It has no
// position authority of its own: location is overwritten with the crab's
// location on every update.
type Claw struct {
	location    r2.Vec
	bodyAnchor  r2.Vec
	jointAnchor r2.Vec
	w, h, s     float64
}

// NewClaw returns a claw at location. bodyAnchor is the fixed offset to the
// shoulder and jointAnchor the movable offset to the claw tip.
func NewClaw(cfg Config, location, bodyAnchor, jointAnchor r2.Vec) Claw {
	return Claw{
		location:    location,
		bodyAnchor:  bodyAnchor,
		jointAnchor: jointAnchor,
		w:           cfg.ClawWidth,
		h:           cfg.ClawHeight,
		s:           cfg.ClawStep,
	}
}

// Update snaps the claw to its parent's location.
func (c *Claw) Update(parent r2.Vec) {
	c.location = parent
}

// Origin is the top-left of the claw sprite, used for both drawing and
// collision.
func (c *Claw) Origin() r2.Vec {
	return r2.Sub(r2.Add(c.location, c.jointAnchor), r2.Vec{X: c.w / 2, Y: c.h})
}

// MoveDir nudges the joint anchor one step and returns the new anchor. There
// is no reach limit.
func (c *Claw) MoveDir(d Direction) r2.Vec {
	switch d {
	case Up:
		c.jointAnchor.Y -= c.s
	case Down:
		c.jointAnchor.Y += c.s
	case Left:
		c.jointAnchor.X -= c.s
	case Right:
		c.jointAnchor.X += c.s
	}
	return c.jointAnchor
}

func (c *Claw) Location() r2.Vec    { return c.location }
func (c *Claw) BodyAnchor() r2.Vec  { return c.bodyAnchor }
func (c *Claw) JointAnchor() r2.Vec { return c.jointAnchor }

// BodyPoint is the shoulder in screen space.
func (c *Claw) BodyPoint() r2.Vec {
	return r2.Add(c.location, c.bodyAnchor)
}

// JointPoint is the claw tip in screen space.
func (c *Claw) JointPoint() r2.Vec {
	return r2.Add(c.location, c.jointAnchor)
}

// Draw renders the arm from shoulder to tip, then the claw sprite.
func (c *Claw) Draw(canvas Canvas, sprite Sprite, armWidth float64) {
	canvas.DrawLine(c.BodyPoint(), c.JointPoint(), armWidth, ArmColor)
	canvas.DrawSprite(sprite, c.Origin(), r2.Vec{X: c.w, Y: c.h})
}
