// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Isolines  IsolineConfig   `yaml:"isolines"`
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds sample grid resolution and the bounds input handling
// clamps to when resizing at runtime.
type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	Step      int `yaml:"step"` // cells added/removed per resize keypress
}

// IsolineConfig holds contour extraction parameters.
type IsolineConfig struct {
	Count int `yaml:"count"`
	Max   int `yaml:"max"`
}

// FieldConfig holds the scalar field parameters and the source set.
type FieldConfig struct {
	Scale    float64        `yaml:"scale"`     // world -> field coordinate scale
	Bound    float64        `yaml:"bound"`     // reflection boundary for source motion
	Speed    float64        `yaml:"speed"`     // motion speed multiplier applied to dt
	MaxSpeed float64        `yaml:"max_speed"` // upper bound of the speed control
	Sources  []SourceConfig `yaml:"sources"`
}

// SourceConfig defines one metaball source.
type SourceConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
	R  float64 `yaml:"r"` // radius parameter; sign-insensitive, must be nonzero
	C  float64 `yaml:"c"` // weight
}

// PhysicsConfig holds fixed-step simulation parameters for headless runs.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects malformed configuration. Bad grid dimensions and isoline
// counts are contract violations, never silently clamped.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.MinWidth <= 0 || c.Grid.MinHeight <= 0 {
		return fmt.Errorf("config: grid clamp minimums must be positive, got %dx%d", c.Grid.MinWidth, c.Grid.MinHeight)
	}
	if c.Grid.MaxWidth < c.Grid.MinWidth || c.Grid.MaxHeight < c.Grid.MinHeight {
		return fmt.Errorf("config: grid clamp maximums below minimums")
	}
	if c.Isolines.Count < 0 {
		return fmt.Errorf("config: isoline count must be non-negative, got %d", c.Isolines.Count)
	}
	if c.Isolines.Max < c.Isolines.Count {
		return fmt.Errorf("config: isoline max %d below initial count %d", c.Isolines.Max, c.Isolines.Count)
	}
	if c.Field.Scale == 0 {
		return fmt.Errorf("config: field scale must be nonzero")
	}
	if c.Field.MaxSpeed < c.Field.Speed {
		return fmt.Errorf("config: field max_speed %v below speed %v", c.Field.MaxSpeed, c.Field.Speed)
	}
	for i, s := range c.Field.Sources {
		if s.R == 0 {
			return fmt.Errorf("config: source %d has zero radius parameter", i)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
