// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through gaps in a stream of
// vertical obstacles. The simulation is shell-agnostic: the platform feeds
// it events and ticks, and draws its snapshots.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID identifies the game in score storage.
const ID = "flappy"

// Title is the display name.
const Title = "Flappy Bird"

// State is the session's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminal:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Cause records why a session ended.
type Cause int

const (
	CauseNone     Cause = iota
	CauseBoundary       // Flyer touched the top or bottom of the field
	CauseObstacle       // Flyer hit an obstacle
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "None"
	case CauseBoundary:
		return "Boundary"
	case CauseObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Session owns one flyer, one obstacle stream and the score.
// Once terminal, nothing changes until Reset.
type Session struct {
	cfg    config.GameConfig
	flyer  *Flyer
	stream *Stream
	score  int
	state  State
	cause  Cause
	ticks  int // Ticks simulated since the last reset
}

// NewSession creates a running session. src supplies gap positions for
// every obstacle spawned over the session's lifetime, across resets.
func NewSession(cfg config.GameConfig, src GapSource) *Session {
	s := &Session{
		cfg:    cfg,
		stream: NewStream(cfg, src),
	}
	s.Reset()
	return s
}

// Reset restores the initial state: fresh flyer, empty stream, zero score.
func (s *Session) Reset() {
	s.flyer = NewFlyer(s.cfg)
	s.stream.Reset()
	s.score = 0
	s.state = StateRunning
	s.cause = CauseNone
	s.ticks = 0
}

// Handle applies a single input event. It returns true for a quit request.
// The primary action flaps while running and restarts after game over.
func (s *Session) Handle(ev core.Event) bool {
	switch ev {
	case core.EventQuit:
		return true
	case core.EventPrimary:
		if s.state == StateTerminal {
			s.Reset()
		} else {
			s.flyer.Jump()
		}
	}
	return false
}

// Step advances the simulation by one fixed tick.
// Order: flyer, boundary check, obstacle stream, terminal transition.
func (s *Session) Step() {
	if s.state == StateTerminal {
		return
	}

	s.ticks++
	s.flyer.Tick()
	hitBoundary := s.outOfBounds()

	res := s.stream.Tick(s.flyer)
	s.score += res.Scored

	switch {
	case hitBoundary:
		s.terminate(CauseBoundary)
	case res.Collided:
		s.terminate(CauseObstacle)
	}
}

// Advance drains one tick's worth of events in receipt order and then steps.
// A quit event stops draining; the step still runs and Advance returns true.
func (s *Session) Advance(events []core.Event) (quit bool) {
	for _, ev := range events {
		if s.Handle(ev) {
			quit = true
			break
		}
	}
	s.Step()
	return quit
}

// outOfBounds reports whether the flyer touches the top or bottom edge.
func (s *Session) outOfBounds() bool {
	f := s.flyer
	return f.Y()+f.Radius() >= float64(s.cfg.Field.Height) || f.Y()-f.Radius() <= 0
}

func (s *Session) terminate(c Cause) {
	s.state = StateTerminal
	s.cause = c
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Terminal returns true after game over.
func (s *Session) Terminal() bool { return s.state == StateTerminal }

// Cause returns why the session ended, or CauseNone while running.
func (s *Session) Cause() Cause { return s.cause }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.GameConfig { return s.cfg }
