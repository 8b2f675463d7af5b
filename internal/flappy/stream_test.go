package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestStreamSpawnCadence(t *testing.T) {
	s := NewStream(config.Default(), gapAt(200))
	f := flyerAt(80, 290)

	for i := 1; i < 80; i++ {
		if res := s.Tick(f); res.Spawned {
			t.Fatalf("unexpected spawn at tick %d", i)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("expected no obstacles before tick 80, got %d", s.Len())
	}

	res := s.Tick(f)
	if !res.Spawned || s.Len() != 1 {
		t.Fatalf("expected exactly one obstacle at tick 80, got %d (spawned=%v)", s.Len(), res.Spawned)
	}
	if s.Countdown() != 0 {
		t.Errorf("countdown should reset after spawn, got %d", s.Countdown())
	}

	// Spawned at the right edge, then advanced once in the same tick.
	if x := s.Obstacles()[0].X(); x != 358 {
		t.Errorf("new obstacle X = %f, expected 358", x)
	}
}

func TestStreamRemovesOffscreen(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, gapAt(200))

	gone := NewObstacle(-60, cfg, gapAt(200)) // right edge at -8
	edge := NewObstacle(-50, cfg, gapAt(200)) // right edge at 2, then 0 after tick
	s.obstacles = append(s.obstacles, gone, edge)

	res := s.Tick(flyerAt(80, 290))
	if res.Removed != 1 {
		t.Errorf("Removed = %d, expected 1", res.Removed)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 obstacle left, got %d", s.Len())
	}
	if s.Obstacles()[0].X() != -52 {
		t.Errorf("remaining obstacle X = %f, expected -52", s.Obstacles()[0].X())
	}
}

func TestStreamPreservesSpawnOrder(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, gapAt(200))
	for _, x := range []float64{-70, 10, -65, 200, 300} {
		s.obstacles = append(s.obstacles, NewObstacle(x, cfg, gapAt(200)))
	}

	s.Tick(flyerAt(80, 290))

	obs := s.Obstacles()
	expected := []float64{8, 198, 298}
	if len(obs) != len(expected) {
		t.Fatalf("expected %d obstacles, got %d", len(expected), len(obs))
	}
	for i, x := range expected {
		if obs[i].X() != x {
			t.Errorf("obstacle %d X = %f, expected %f", i, obs[i].X(), x)
		}
	}
}

func TestStreamScoresOnce(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, gapAt(200))
	f := flyerAt(80, 290)

	// Right edge at 29 + 52 = 81, crosses x=80 after one tick.
	s.obstacles = append(s.obstacles, NewObstacle(29, cfg, gapAt(200)))

	if res := s.Tick(f); res.Scored != 1 {
		t.Fatalf("Scored = %d, expected 1", res.Scored)
	}
	if !s.Obstacles()[0].Scored() {
		t.Error("obstacle should be flagged as scored")
	}
	if res := s.Tick(f); res.Scored != 0 {
		t.Errorf("obstacle scored twice")
	}
}

func TestStreamScoresSimultaneous(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, gapAt(200))
	s.obstacles = append(s.obstacles,
		NewObstacle(29, cfg, gapAt(200)),
		NewObstacle(29.5, cfg, gapAt(200)),
	)

	if res := s.Tick(flyerAt(80, 290)); res.Scored != 2 {
		t.Errorf("Scored = %d, expected 2", res.Scored)
	}
}

func TestStreamCollision(t *testing.T) {
	cfg := config.Default()

	s := NewStream(cfg, gapAt(200))
	s.obstacles = append(s.obstacles, NewObstacle(60, cfg, gapAt(200)))
	if res := s.Tick(flyerAt(80, 290)); res.Collided {
		t.Error("flyer mid-gap should pass without collision")
	}

	s = NewStream(cfg, gapAt(200))
	s.obstacles = append(s.obstacles, NewObstacle(60, cfg, gapAt(200)))
	if res := s.Tick(flyerAt(80, 150)); !res.Collided {
		t.Error("flyer above the gap should collide")
	}
}

func TestStreamReset(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, gapAt(200))
	s.obstacles = append(s.obstacles, NewObstacle(200, cfg, gapAt(200)))
	for i := 0; i < 10; i++ {
		s.Tick(flyerAt(80, 290))
	}

	s.Reset()
	if s.Len() != 0 || s.Countdown() != 0 {
		t.Errorf("Reset left %d obstacles, countdown %d", s.Len(), s.Countdown())
	}
}
