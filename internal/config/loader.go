package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves and parses the game configuration.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped silently when missing or malformed.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Keys absent from the document keep their default values.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, fmt.Errorf("failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks that the configuration describes a playable field.
func (c GameConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Flyer.Radius <= 0:
		return fmt.Errorf("%w: flyer radius must be positive", ErrInvalidConfig)
	case c.Flyer.X < 0 || c.Flyer.X > float64(c.Field.Width):
		return fmt.Errorf("%w: flyer x %.1f outside field", ErrInvalidConfig, c.Flyer.X)
	case c.Physics.ObstacleSpeed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: obstacle width and gap height must be positive", ErrInvalidConfig)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case c.Obstacles.GapTopMin < 0 || c.Obstacles.GapTopMax < c.Obstacles.GapTopMin:
		return fmt.Errorf("%w: gap top range [%d, %d] is empty", ErrInvalidConfig, c.Obstacles.GapTopMin, c.Obstacles.GapTopMax)
	case float64(c.Obstacles.GapTopMax)+c.Obstacles.GapHeight > float64(c.Field.Height):
		return fmt.Errorf("%w: gap may extend below field (%d + %.0f > %d)",
			ErrInvalidConfig, c.Obstacles.GapTopMax, c.Obstacles.GapHeight, c.Field.Height)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
