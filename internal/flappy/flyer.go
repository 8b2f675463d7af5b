package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Flyer is the player-controlled bird. Its horizontal position is fixed;
// velocity only changes through gravity or a flap.
type Flyer struct {
	x        float64
	y        float64
	velocity float64
	radius   float64

	gravity float64
	impulse float64
}

// NewFlyer creates a flyer at its starting position with zero velocity.
func NewFlyer(cfg config.GameConfig) *Flyer {
	return &Flyer{
		x:       cfg.Flyer.X,
		y:       cfg.StartY(),
		radius:  cfg.Flyer.Radius,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
	}
}

// Jump replaces the current velocity with the upward impulse.
func (f *Flyer) Jump() {
	f.velocity = f.impulse
}

// Tick applies one step of gravity and moves the flyer.
// Boundary checks belong to the session.
func (f *Flyer) Tick() {
	f.velocity += f.gravity
	f.y += f.velocity
}

// X returns the fixed horizontal position.
func (f *Flyer) X() float64 { return f.x }

// Y returns the vertical position of the flyer's center.
func (f *Flyer) Y() float64 { return f.y }

// Velocity returns the vertical velocity (negative = up).
func (f *Flyer) Velocity() float64 { return f.velocity }

// Radius returns the collision radius.
func (f *Flyer) Radius() float64 { return f.radius }
