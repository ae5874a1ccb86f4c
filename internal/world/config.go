package world

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tileworld/internal/core"
	"tileworld/internal/terrain"
)

// Config holds the parameters a world is generated from. Width and Height
// are in blocks; TileSize is the block edge in pixels.
type Config struct {
	Seed int64 `yaml:"seed"`

	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`

	// GradientSize is the base band width of the coastline passes.
	GradientSize int `yaml:"gradient_size"`

	SectionW int `yaml:"section_w"`
	SectionH int `yaml:"section_h"`

	Recipe      string  `yaml:"recipe"`
	GrassChance float64 `yaml:"grass_chance,omitempty"`
	GrassSize   int     `yaml:"grass_size,omitempty"`

	// Atlas is an optional PNG tile atlas. Empty generates one.
	Atlas string `yaml:"atlas,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:         1,
		Width:        200,
		Height:       200,
		TileSize:     16,
		GradientSize: 5,
		SectionW:     25,
		SectionH:     25,
		Recipe:       "coast",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overlays flag-style key/value pairs on c. Unparseable or
// out-of-range values leave the field unchanged.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["gradient"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GradientSize = parsed
		}
	}
	if v, ok := cfg["section"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SectionW, c.SectionH = parsed, parsed
		}
	}
	if v, ok := cfg["recipe"]; ok && strings.TrimSpace(v) != "" {
		c.Recipe = strings.TrimSpace(v)
	}
	if v, ok := cfg["grass_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.GrassChance = parsed
		}
	}
	if v, ok := cfg["grass_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.GrassSize = parsed
		}
	}
	if v, ok := cfg["atlas"]; ok {
		c.Atlas = v
	}
	return c
}

// LoadConfig reads a YAML config on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first parameter that would make generation fail.
func (c Config) Validate() error {
	if c.SectionW <= 0 || c.SectionH <= 0 {
		return fmt.Errorf("%w: section %dx%d", core.ErrInvalidDimensions, c.SectionW, c.SectionH)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Width%c.SectionW != 0 || c.Height%c.SectionH != 0 {
		return fmt.Errorf("%w: %dx%d blocks must be positive multiples of %dx%d", core.ErrInvalidDimensions, c.Width, c.Height, c.SectionW, c.SectionH)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", core.ErrInvalidDimensions, c.TileSize)
	}
	if c.GradientSize <= 0 {
		return fmt.Errorf("%w: gradient size %d", core.ErrInvalidDimensions, c.GradientSize)
	}
	if c.GrassChance < 0 || c.GrassChance > 1 {
		return fmt.Errorf("grass chance %v outside [0,1]", c.GrassChance)
	}
	if _, err := terrain.Lookup(c.Recipe); err != nil {
		return err
	}
	return nil
}

func (c Config) options() terrain.Options {
	return terrain.Options{GrassChance: c.GrassChance, GrassSize: c.GrassSize}
}
