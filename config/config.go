// Package config loads inventory generation settings: embedded TOML
// defaults, an optional TOML file, then BUILDINGS_* environment overrides
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/buildings/asset"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "BUILDINGS_"

// ErrInvalidConfig is returned for unknown keys or out-of-range values
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the inventory generation settings
type Config struct {
	Inventory InventoryConfig `toml:"inventory"`
	Layout    LayoutConfig    `toml:"layout"`
	Debug     DebugConfig     `toml:"debug"`
}

// InventoryConfig controls the item draw
type InventoryConfig struct {
	Seed  uint64 `toml:"seed" env:"SEED"`
	Count int    `toml:"count" env:"COUNT"`
}

// LayoutConfig controls item size and slot placement
type LayoutConfig struct {
	BaseVisualSize float64 `toml:"base_visual_size" env:"BASE_VISUAL_SIZE"`
	ColumnX        float64 `toml:"column_x" env:"COLUMN_X"`
	SlotGap        float64 `toml:"slot_gap" env:"SLOT_GAP"`
}

// DebugConfig toggles diagnostics
type DebugConfig struct {
	Enabled bool `toml:"enabled" env:"DEBUG"`
}

// Default returns the embedded defaults
func Default() *Config {
	cfg := &Config{}
	if err := decode(asset.DefaultInventoryConfig, cfg); err != nil {
		panic(fmt.Sprintf("embedded inventory config is broken: %v", err))
	}
	return cfg
}

// Load layers defaults, the TOML file at path (skipped when empty) and the
// process environment, then validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFile overlays keys present in a TOML file
func (c *Config) MergeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return checkUndecoded(md)
}

// MergeString overlays keys present in a TOML document
func (c *Config) MergeString(data string) error {
	return decode(data, c)
}

// ApplyEnv overlays BUILDINGS_* variables from environment, or from the
// process environment when nil
func (c *Config) ApplyEnv(environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings that would make generation meaningless
func (c *Config) Validate() error {
	if c.Inventory.Count <= 0 {
		return fmt.Errorf("%w: inventory.count must be positive, got %d", ErrInvalidConfig, c.Inventory.Count)
	}
	if !(c.Layout.BaseVisualSize > 0) {
		return fmt.Errorf("%w: layout.base_visual_size must be positive, got %v", ErrInvalidConfig, c.Layout.BaseVisualSize)
	}
	if c.Layout.SlotGap < 0 {
		return fmt.Errorf("%w: layout.slot_gap must not be negative, got %v", ErrInvalidConfig, c.Layout.SlotGap)
	}
	return nil
}

func decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
}
