package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/flappy.yaml
// and is used when the embedded document cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  360,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:       0.3,
			JumpImpulse:   -7,
			ObstacleSpeed: 2,
		},
		Flyer: FlyerConfig{
			X:      80,
			Radius: 12,
		},
		Obstacles: ObstacleConfig{
			Width:         52,
			GapHeight:     180,
			GapTopMin:     100,
			GapTopMax:     350,
			SpawnInterval: 80,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultYAML
}
