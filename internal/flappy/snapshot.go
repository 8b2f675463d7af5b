package flappy

// Snapshot is a read-only copy of everything the shell needs to draw a frame.
type Snapshot struct {
	FieldW    int
	FieldH    int
	Flyer     FlyerView
	Obstacles []ObstacleView
	Score     int
	Terminal  bool
	Cause     Cause
	Tick      int
}

// FlyerView is the drawable state of the flyer.
type FlyerView struct {
	X        float64
	Y        float64
	Radius   float64
	Velocity float64
}

// ObstacleView is the drawable state of one obstacle.
type ObstacleView struct {
	X         float64
	Width     float64
	GapTop    float64
	GapBottom float64
	Scored    bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, s.stream.Len())
	for _, o := range s.stream.obstacles {
		obstacles = append(obstacles, ObstacleView{
			X:         o.X(),
			Width:     o.Width(),
			GapTop:    float64(o.GapTop()),
			GapBottom: o.GapBottom(),
			Scored:    o.Scored(),
		})
	}

	return Snapshot{
		FieldW: s.cfg.Field.Width,
		FieldH: s.cfg.Field.Height,
		Flyer: FlyerView{
			X:        s.flyer.X(),
			Y:        s.flyer.Y(),
			Radius:   s.flyer.Radius(),
			Velocity: s.flyer.Velocity(),
		},
		Obstacles: obstacles,
		Score:     s.score,
		Terminal:  s.Terminal(),
		Cause:     s.cause,
		Tick:      s.ticks,
	}
}
