package game

import "gonum.org/v1/gonum/spatial/r2"

// Crab walks left and right along the bottom of the screen.
type Crab struct {
	location r2.Vec
	velocity r2.Vec
	w, h, s  float64
}

// NewCrab returns a crab at location walking right.
func NewCrab(cfg Config, location r2.Vec) Crab {
	return Crab{
		location: location,
		velocity: r2.Vec{X: cfg.CrabStep},
		w:        cfg.CrabWidth,
		h:        cfg.CrabHeight,
		s:        cfg.CrabStep,
	}
}

// StartLocation centres the crab horizontally, resting on the bottom edge.
func StartLocation(cfg Config) r2.Vec {
	return r2.Vec{
		X: cfg.ScreenWidth/2 - cfg.CrabWidth/2,
		Y: cfg.ScreenHeight - cfg.CrabHeight,
	}
}

// Update advances one step and turns around near the edges. The right turn
// triggers at x+2w >= maxScreen and the left turn at x < w, so the crab never
// reaches either edge.
func (c *Crab) Update(maxScreen float64) {
	c.location.X += c.velocity.X

	if c.location.X+c.w*2 >= maxScreen {
		c.velocity.X = -c.s
	} else if c.location.X < c.w {
		c.velocity.X = c.s
	}
}

func (c *Crab) Location() r2.Vec { return c.location }
func (c *Crab) Velocity() r2.Vec { return c.velocity }
func (c *Crab) Size() r2.Vec     { return r2.Vec{X: c.w, Y: c.h} }

func (c *Crab) Draw(canvas Canvas) {
	canvas.DrawSprite(SpriteCrab, c.location, c.Size())
}
