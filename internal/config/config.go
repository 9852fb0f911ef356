// Package config loads and stores the application settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
	"github.com/OpenTraceLab/OpenTraceLA/pkg/view"
)

// Config is the persisted application configuration.
type Config struct {
	Ruler   Ruler   `toml:"ruler"`
	Capture Capture `toml:"capture"`
}

// Ruler holds the timeline ruler settings.
type Ruler struct {
	Theme        string  `toml:"theme"`
	MinorLabels  bool    `toml:"minor_labels"`
	Height       int     `toml:"height"` // dp
	MajorFont    float64 `toml:"major_font"`
	MinorFont    float64 `toml:"minor_font"`
	FlagFont     float64 `toml:"flag_font"`
	FlagFontBold bool    `toml:"flag_font_bold"`
}

// Capture describes the capture shown when no acquisition backend is
// attached.
type Capture struct {
	SampleRate    float64 `toml:"sample_rate"` // Hz, 0 for uncalibrated
	Samples       int64   `toml:"samples"`
	TriggerSample float64 `toml:"trigger_sample"`
}

// Default returns the built-in configuration.
func Default() *Config {
	fonts := view.DefaultFonts()
	return &Config{
		Ruler: Ruler{
			Theme:        timeline.ThemeNames[timeline.ThemeDark],
			Height:       48,
			MajorFont:    fonts.Major.Size,
			MinorFont:    fonts.Minor.Size,
			FlagFont:     fonts.Flag.Size,
			FlagFontBold: fonts.Flag.Bold,
		},
		Capture: Capture{
			SampleRate:    100e6,
			Samples:       1 << 20,
			TriggerSample: 1 << 18,
		},
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "OpenTraceLA", "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "opentracela", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults. Keys absent from the file keep their default values and keys
// the configuration does not know are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate rejects settings the view cannot work with.
func (c *Config) Validate() error {
	if _, ok := timeline.ParseTheme(c.Ruler.Theme); !ok {
		return fmt.Errorf("unknown ruler theme %q", c.Ruler.Theme)
	}
	if c.Ruler.Height <= 0 {
		return fmt.Errorf("ruler height must be positive, got %d", c.Ruler.Height)
	}
	if c.Ruler.MajorFont <= 0 || c.Ruler.MinorFont <= 0 || c.Ruler.FlagFont <= 0 {
		return errors.New("font sizes must be positive")
	}
	if c.Capture.SampleRate < 0 {
		return fmt.Errorf("sample rate must not be negative, got %v", c.Capture.SampleRate)
	}
	if c.Capture.Samples < 0 {
		return fmt.Errorf("sample count must not be negative, got %d", c.Capture.Samples)
	}
	return nil
}

// NewModel builds a view model from the capture and ruler settings.
func (c *Config) NewModel() *view.Model {
	m := view.NewModel(c.Capture.SampleRate, c.Capture.Samples)
	m.TriggerSample = c.Capture.TriggerSample
	m.MinorLabels = c.Ruler.MinorLabels
	theme, _ := timeline.ParseTheme(c.Ruler.Theme)
	m.Palette = timeline.PaletteFor(theme)
	m.Fonts = view.Fonts{
		Major: timeline.Font{Size: c.Ruler.MajorFont},
		Minor: timeline.Font{Size: c.Ruler.MinorFont},
		Flag:  timeline.Font{Size: c.Ruler.FlagFont, Bold: c.Ruler.FlagFontBold},
	}
	return m
}
