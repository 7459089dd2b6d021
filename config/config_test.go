package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Grid.Width != 400 || cfg.Grid.Height != 300 {
		t.Errorf("default grid = %dx%d, want 400x300", cfg.Grid.Width, cfg.Grid.Height)
	}
	if len(cfg.Field.Sources) != 9 {
		t.Errorf("default sources = %d, want 9", len(cfg.Field.Sources))
	}
	if cfg.Field.Scale != 5.0 || cfg.Field.Bound != 5.0 {
		t.Errorf("field scale/bound = %v/%v, want 5/5", cfg.Field.Scale, cfg.Field.Bound)
	}
	if cfg.Field.MaxSpeed != 4.0 {
		t.Errorf("field max_speed = %v, want 4", cfg.Field.MaxSpeed)
	}
	if cfg.Derived.DT32 <= 0 {
		t.Errorf("derived DT32 = %v, want positive", cfg.Derived.DT32)
	}

	// One default source deliberately carries a negative radius parameter;
	// the formula squares it, so it must pass validation.
	negative := false
	for _, s := range cfg.Field.Sources {
		if s.R < 0 {
			negative = true
		}
	}
	if !negative {
		t.Error("expected a negative-R source in the defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Error("loading a missing file succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero grid width", func(c *Config) { c.Grid.Width = 0 }, "grid dimensions"},
		{"negative grid height", func(c *Config) { c.Grid.Height = -3 }, "grid dimensions"},
		{"negative isolines", func(c *Config) { c.Isolines.Count = -1 }, "isoline count"},
		{"isoline max below count", func(c *Config) { c.Isolines.Max = 1; c.Isolines.Count = 5 }, "isoline max"},
		{"zero scale", func(c *Config) { c.Field.Scale = 0 }, "scale"},
		{"max speed below speed", func(c *Config) { c.Field.MaxSpeed = 0.5 }, "max_speed"},
		{"zero source radius", func(c *Config) { c.Field.Sources[0].R = 0 }, "radius"},
		{"clamp max below min", func(c *Config) { c.Grid.MaxWidth = 5 }, "clamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
