// Package config reads and writes the mindmap viewer's TOML settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/mindmap"
)

// Config holds viewer configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Layout LayoutConfig `toml:"layout"`
	Drag   DragConfig   `toml:"drag"`
	Icons  IconsConfig  `toml:"icons"`
	Debug  DebugConfig  `toml:"debug"`
	Watch  WatchConfig  `toml:"watch"`
}

// WindowConfig controls the window.
type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	ShowFPS bool   `toml:"show_fps"`
}

// LayoutConfig controls node placement and transitions.
type LayoutConfig struct {
	RowHeight    float64 `toml:"row_height"`
	CharWidth    float64 `toml:"char_width"`
	Duration     float64 `toml:"duration"` // seconds
	SortChildren bool    `toml:"sort_children"`
	LabelSize    float64 `toml:"label_size"`
}

// DragConfig controls dragging and edge panning.
type DragConfig struct {
	PanSpeed      float64 `toml:"pan_speed"`
	PanBoundary   float64 `toml:"pan_boundary"`
	PanIntervalMS int     `toml:"pan_interval_ms"`
	DeadZone      float64 `toml:"dead_zone"`
}

// IconsConfig selects the glyph font for node icons.
type IconsConfig struct {
	Font string `toml:"font"` // path to a TTF/OTF glyph font; empty for none
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	Enabled bool `toml:"enabled"`
}

// WatchConfig controls reloading the document when it changes on disk.
type WatchConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 960, Height: 800, Title: "mindmap"},
		Layout: LayoutConfig{
			RowHeight: mindmap.DefaultRowHeight,
			CharWidth: mindmap.DefaultCharWidth,
			Duration:  float64(mindmap.DefaultDuration),
			LabelSize: mindmap.DefaultLabelSize,
		},
		Drag: DragConfig{
			PanSpeed:      mindmap.DefaultPanSpeed,
			PanBoundary:   mindmap.DefaultPanBoundary,
			PanIntervalMS: int(mindmap.DefaultPanInterval / time.Millisecond),
			DeadZone:      4,
		},
	}
}

// Dir returns the mindmap config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mindmap")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the default config file. A missing file yields the defaults.
func Load() (*Config, error) {
	cfg, err := LoadFile(Path())
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads the config at path over the defaults. Keys absent from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the default config path.
func Save(cfg *Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path, creating parent directories.
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ViewOptions maps the configuration onto view options.
func (c *Config) ViewOptions() mindmap.ViewOptions {
	return mindmap.ViewOptions{
		Layout: mindmap.LayoutOptions{
			RowHeight:    c.Layout.RowHeight,
			CharWidth:    c.Layout.CharWidth,
			SortChildren: c.Layout.SortChildren,
		},
		Drag: mindmap.DragOptions{
			PanSpeed:    c.Drag.PanSpeed,
			PanBoundary: c.Drag.PanBoundary,
			PanInterval: time.Duration(c.Drag.PanIntervalMS) * time.Millisecond,
		},
		Duration: float32(c.Layout.Duration),
		DeadZone: c.Drag.DeadZone,
		Debug:    c.Debug.Enabled,
		Viewport: mindmap.Rect{Width: float64(c.Window.Width), Height: float64(c.Window.Height)},
	}
}
