// Package config loads simulation settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/rover-colony/internal/world"
)

// Config holds every tunable of a simulation run.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = random

	NoiseScale       float64 `yaml:"noise_scale"`
	ClearingSize     int     `yaml:"clearing_size"`
	ScienceThreshold float64 `yaml:"science_threshold"`

	PerceptionRadius int `yaml:"perception_radius"`
	ScoutRange       int `yaml:"scout_range"`

	TickIntervalMs int    `yaml:"tick_interval_ms"`
	MaxTicks       uint64 `yaml:"max_ticks"` // 0 = run until interrupted
	ReportEvery    uint64 `yaml:"report_every"`

	Render   bool   `yaml:"render"`
	FogOfWar bool   `yaml:"fog_of_war"` // Render the base's map instead of the ground truth
	LogLevel string `yaml:"log_level"`
}

// Default returns the standard configuration.
func Default() Config {
	gen := world.DefaultGenConfig()
	return Config{
		Width:            gen.Width,
		Height:           gen.Height,
		Seed:             0,
		NoiseScale:       gen.Scale,
		ClearingSize:     gen.ClearingSize,
		ScienceThreshold: gen.ScienceThreshold,
		PerceptionRadius: 2,
		ScoutRange:       30,
		TickIntervalMs:   200,
		MaxTicks:         0,
		ReportEvery:      100,
		Render:           true,
		FogOfWar:         false,
		LogLevel:         "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from COLONY_* environment variables. getenv is
// usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"COLONY_WIDTH", &c.Width},
		{"COLONY_HEIGHT", &c.Height},
		{"COLONY_PERCEPTION_RADIUS", &c.PerceptionRadius},
		{"COLONY_SCOUT_RANGE", &c.ScoutRange},
		{"COLONY_TICK_INTERVAL_MS", &c.TickIntervalMs},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := getenv("COLONY_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COLONY_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := getenv("COLONY_MAX_TICKS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COLONY_MAX_TICKS: %w", err)
		}
		c.MaxTicks = n
	}
	if v := getenv("COLONY_RENDER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COLONY_RENDER: %w", err)
		}
		c.Render = b
	}
	if v := getenv("COLONY_FOG_OF_WAR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COLONY_FOG_OF_WAR: %w", err)
		}
		c.FogOfWar = b
	}
	if v := getenv("COLONY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Width < 2 || c.Height < 2 {
		errs = append(errs, fmt.Errorf("world size %dx%d too small for the founding crew", c.Width, c.Height))
	}
	if c.NoiseScale <= 0 {
		errs = append(errs, fmt.Errorf("noise_scale %v must be positive", c.NoiseScale))
	}
	if c.ClearingSize <= 0 || c.ClearingSize%2 == 0 {
		errs = append(errs, fmt.Errorf("clearing_size %d must be a positive odd number", c.ClearingSize))
	}
	if c.ScienceThreshold < 0 {
		errs = append(errs, fmt.Errorf("science_threshold %v must not be negative", c.ScienceThreshold))
	}
	if c.PerceptionRadius < 1 {
		errs = append(errs, fmt.Errorf("perception_radius %d must be at least 1", c.PerceptionRadius))
	}
	if c.ScoutRange < 1 {
		errs = append(errs, fmt.Errorf("scout_range %d must be at least 1", c.ScoutRange))
	}
	if c.TickIntervalMs < 0 {
		errs = append(errs, fmt.Errorf("tick_interval_ms %d must not be negative", c.TickIntervalMs))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// GenConfig returns the world generation parameters.
func (c Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:            c.Width,
		Height:           c.Height,
		Seed:             c.Seed,
		Scale:            c.NoiseScale,
		ClearingSize:     c.ClearingSize,
		ScienceThreshold: c.ScienceThreshold,
	}
}

// TickInterval returns the pause between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
