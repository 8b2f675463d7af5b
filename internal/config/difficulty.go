package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
// Presets adjust the configuration once, before a session starts.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapHeight += 40
		cfg.Obstacles.SpawnInterval += 20
	case DifficultyHard:
		cfg.Obstacles.GapHeight -= 30
		cfg.Obstacles.SpawnInterval -= 10
		cfg.Physics.ObstacleSpeed *= 1.25
	}

	// Keep the widest gap inside the field.
	maxTop := float64(cfg.Field.Height) - cfg.Obstacles.GapHeight
	if float64(cfg.Obstacles.GapTopMax) > maxTop {
		cfg.Obstacles.GapTopMax = int(math.Floor(maxTop))
	}
	if cfg.Obstacles.GapTopMin > cfg.Obstacles.GapTopMax {
		cfg.Obstacles.GapTopMin = cfg.Obstacles.GapTopMax
	}
	if cfg.Obstacles.SpawnInterval < 1 {
		cfg.Obstacles.SpawnInterval = 1
	}
}
