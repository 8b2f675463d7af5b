package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// GapSource draws gap positions. *rand.Rand satisfies it; tests use a
// fixed source.
type GapSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Obstacle is a vertical barrier with a passable gap, moving left at a
// constant speed. The gap position is drawn once at construction.
type Obstacle struct {
	x         float64 // Left edge
	gapTop    int     // Top of the gap
	gapHeight float64
	width     float64
	speed     float64
	scored    bool // Whether the flyer has passed this obstacle
}

// NewObstacle creates an obstacle with its left edge at x and a gap top
// drawn uniformly from the configured inclusive range.
func NewObstacle(x float64, cfg config.GameConfig, src GapSource) Obstacle {
	lo, hi := cfg.Obstacles.GapTopMin, cfg.Obstacles.GapTopMax
	return Obstacle{
		x:         x,
		gapTop:    lo + src.Intn(hi-lo+1),
		gapHeight: cfg.Obstacles.GapHeight,
		width:     cfg.Obstacles.Width,
		speed:     cfg.Physics.ObstacleSpeed,
	}
}

// Tick moves the obstacle left by one step.
func (o *Obstacle) Tick() {
	o.x -= o.speed
}

// Overlaps reports whether the flyer touches the solid part of the obstacle:
// it must overlap horizontally and leave the gap vertically.
func (o Obstacle) Overlaps(f *Flyer) bool {
	r := f.Radius()
	horizontal := f.X()+r > o.x && f.X()-r < o.Right()
	if !horizontal {
		return false
	}
	return f.Y()-r < float64(o.gapTop) || f.Y()+r > o.GapBottom()
}

// X returns the left edge.
func (o Obstacle) X() float64 { return o.x }

// Right returns the right edge.
func (o Obstacle) Right() float64 { return o.x + o.width }

// Width returns the horizontal extent.
func (o Obstacle) Width() float64 { return o.width }

// GapTop returns the top of the gap.
func (o Obstacle) GapTop() int { return o.gapTop }

// GapBottom returns the bottom of the gap.
func (o Obstacle) GapBottom() float64 { return float64(o.gapTop) + o.gapHeight }

// Scored returns true once the flyer has passed this obstacle.
func (o Obstacle) Scored() bool { return o.scored }
