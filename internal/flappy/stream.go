package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// StreamResult reports what happened to the obstacle stream in one tick.
type StreamResult struct {
	Spawned  bool // A new obstacle entered at the right edge
	Removed  int  // Obstacles pruned off the left edge
	Scored   int  // Obstacles the flyer passed this tick
	Collided bool // Some obstacle overlaps the flyer
}

// Stream owns the obstacles in spawn order (left to right) and the
// spawn countdown.
type Stream struct {
	obstacles []Obstacle
	countdown int
	cfg       config.GameConfig
	src       GapSource
}

// NewStream creates an empty stream.
func NewStream(cfg config.GameConfig, src GapSource) *Stream {
	return &Stream{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
		src:       src,
	}
}

// Reset clears all obstacles and the spawn countdown.
func (s *Stream) Reset() {
	s.obstacles = s.obstacles[:0]
	s.countdown = 0
}

// Tick spawns, advances, prunes, scores and collision-tests the stream
// against the flyer, in that order.
func (s *Stream) Tick(f *Flyer) StreamResult {
	var res StreamResult

	s.countdown++
	if s.countdown >= s.cfg.Obstacles.SpawnInterval {
		s.obstacles = append(s.obstacles, NewObstacle(float64(s.cfg.Field.Width), s.cfg, s.src))
		s.countdown = 0
		res.Spawned = true
	}

	// Advance everything first, then keep what is still visible.
	for i := range s.obstacles {
		s.obstacles[i].Tick()
	}
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right() < 0 {
			res.Removed++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.scored && o.Right() < f.X() {
			o.scored = true
			res.Scored++
		}
	}

	for _, o := range s.obstacles {
		if o.Overlaps(f) {
			res.Collided = true
			break
		}
	}

	return res
}

// Obstacles returns a copy of the current obstacles in spawn order.
func (s *Stream) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}

// Countdown returns ticks elapsed since the last spawn.
func (s *Stream) Countdown() int {
	return s.countdown
}
