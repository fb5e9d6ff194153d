package game

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Snack falls from above the screen. Snacks are recycled rather than removed:
// an inactive snack respawns on its next update.
type Snack struct {
	location r2.Vec
	velocity r2.Vec
	w        float64
	active   bool
}

// NewSnack spawns a snack at a random x somewhere above the top of the screen.
func NewSnack(cfg Config, rng *rand.Rand) Snack {
	w := cfg.SnackWidth
	return Snack{
		location: r2.Vec{
			X: rng.Float64() * cfg.ScreenWidth,
			Y: -w - rng.Float64()*cfg.ScreenHeight,
		},
		velocity: fallVelocity(cfg, rng),
		w:        w,
		active:   true,
	}
}

// SpawnSnacks returns n freshly spawned snacks.
func SpawnSnacks(cfg Config, rng *rand.Rand, n int) []Snack {
	snacks := make([]Snack, n)
	for i := range snacks {
		snacks[i] = NewSnack(cfg, rng)
	}
	return snacks
}

func fallVelocity(cfg Config, rng *rand.Rand) r2.Vec {
	return r2.Vec{Y: cfg.SnackMinSpeed + rng.Float64()*cfg.SnackSpeedRange}
}

// Update moves the snack and respawns it at y = -w if it left the screen or
// was caught since the last update.
func (s *Snack) Update(cfg Config, rng *rand.Rand) {
	s.location = r2.Add(s.location, s.velocity)
	if s.location.Y > cfg.ScreenHeight {
		s.active = false
	}

	if !s.active {
		s.location = r2.Vec{X: rng.Float64() * cfg.ScreenWidth, Y: -s.w}
		s.velocity = fallVelocity(cfg, rng)
		s.active = true
	}
}

// CollidesWith reports whether p is within the snack's width of its location.
// A hit consumes the snack, so it cannot be caught twice before the next
// update.
func (s *Snack) CollidesWith(p r2.Vec) bool {
	if !s.active {
		return false
	}
	if r2.Norm(r2.Sub(s.location, p)) < s.w {
		s.active = false
		return true
	}
	return false
}

func (s *Snack) Location() r2.Vec { return s.location }
func (s *Snack) Velocity() r2.Vec { return s.velocity }
func (s *Snack) Width() float64   { return s.w }
func (s *Snack) Active() bool     { return s.active }

func (s *Snack) Draw(canvas Canvas) {
	if !s.active {
		return
	}
	canvas.DrawSprite(SpriteSnack, s.location, r2.Vec{X: s.w, Y: s.w})
}
