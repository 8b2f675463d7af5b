// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains all tunables of the simulation.
// Values are fixed for the lifetime of a session.
type GameConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Flyer     FlyerConfig    `yaml:"flyer"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// FieldConfig defines the visible play field. The origin is top-left and
// y grows downward.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick kinematics.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
}

// FlyerConfig defines the player entity. The flyer starts at half the
// field height with zero velocity.
type FlyerConfig struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines obstacle geometry and spawn cadence.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	GapTopMin     int     `yaml:"gap_top_min"`
	GapTopMax     int     `yaml:"gap_top_max"`
	SpawnInterval int     `yaml:"spawn_interval"`
}

// StartY returns the flyer's initial vertical position.
func (c GameConfig) StartY() float64 {
	return float64(c.Field.Height / 2)
}
