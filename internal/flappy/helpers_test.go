package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fixedGap is a GapSource that always yields the same gap top.
type fixedGap struct {
	top int
	cfg config.GameConfig
}

func (g fixedGap) Intn(n int) int {
	v := g.top - g.cfg.Obstacles.GapTopMin
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func gapAt(top int) fixedGap {
	return fixedGap{top: top, cfg: config.Default()}
}

// keepAloft flaps whenever the flyer sinks below the field center so a
// session survives arbitrarily long without obstacles in the way.
func keepAloft(s *Session) {
	if s.flyer.Y() > s.cfg.StartY()+10 && s.flyer.Velocity() > 0 {
		s.flyer.Jump()
	}
}
