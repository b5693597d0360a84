package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/samsweb/internal/content"
	"github.com/san-kum/samsweb/internal/motion"
)

const (
	DefaultFPS        = 60
	DefaultDiameter   = motion.DefaultDiameter
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
	DefaultTheme      = "minimal"
	DefaultTitle      = "samsweb"
	DefaultSubtitle   = "audio · video · disco · dico · cogito · lego · scribo"
)

type Config struct {
	FPS        int               `yaml:"fps"`
	Seed       int64             `yaml:"seed"`
	Diameter   float64           `yaml:"diameter"`
	Speed      SpeedConfig       `yaml:"speed"`
	Cell       CellConfig        `yaml:"cell"`
	ClickSlop  float64           `yaml:"click_slop"`
	Theme      string            `yaml:"theme"`
	Title      string            `yaml:"title"`
	Subtitle   string            `yaml:"subtitle"`
	Categories []CategoryConfig  `yaml:"categories"`
	Sections   []content.Section `yaml:"sections"`
}

// SpeedConfig bounds the initial per-axis speed in pixels per frame.
type SpeedConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CellConfig is the pixel size of one terminal cell.
type CellConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CategoryConfig struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		FPS:      DefaultFPS,
		Diameter: DefaultDiameter,
		Speed:    SpeedConfig{Min: motion.DefaultSpeed.Min, Max: motion.DefaultSpeed.Max},
		Cell:     CellConfig{Width: DefaultCellWidth, Height: DefaultCellHeight},
		Theme:    DefaultTheme,
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
	}
	cfg.Sections = append(cfg.Sections, content.DefaultSections...)
	for _, s := range content.DefaultSections {
		cfg.Categories = append(cfg.Categories, CategoryConfig{Key: s.Key, Label: labelFor(s.Key)})
	}
	return cfg
}

func labelFor(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the setup preconditions the simulator relies on.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidFPS, c.FPS)
	}
	if c.Diameter <= 0 {
		return fmt.Errorf("%w, got %f", ErrInvalidDiameter, c.Diameter)
	}
	if c.Speed.Min < 0 || c.Speed.Max <= c.Speed.Min {
		return fmt.Errorf("%w: min=%f max=%f", ErrInvalidSpeed, c.Speed.Min, c.Speed.Max)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("%w: %fx%f", ErrInvalidCell, c.Cell.Width, c.Cell.Height)
	}
	if c.ClickSlop < 0 {
		return fmt.Errorf("%w, got %f", ErrInvalidSlop, c.ClickSlop)
	}
	if len(c.Categories) == 0 {
		return ErrNoCategories
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Key == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidCategory)
		}
		if seen[cat.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Key)
		}
		seen[cat.Key] = true
	}
	return nil
}

// SpeedRange converts the speed bounds for the simulator.
func (c *Config) SpeedRange() motion.SpeedRange {
	return motion.SpeedRange{Min: c.Speed.Min, Max: c.Speed.Max}
}

// Directory builds the navigation targets from the configured sections.
func (c *Config) Directory() *content.Directory {
	return content.NewDirectory(c.Sections)
}

// Title returns the display label of a category, falling back to its key.
func (cc CategoryConfig) Title() string {
	if cc.Label != "" {
		return cc.Label
	}
	return labelFor(cc.Key)
}
