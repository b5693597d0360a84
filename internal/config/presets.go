package config

import "sort"

// Presets tweak the default configuration. Each one is applied on top of
// DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"calm": func(c *Config) {
		c.Speed = SpeedConfig{Min: 0.3, Max: 1}
		c.FPS = 30
	},
	"frantic": func(c *Config) {
		c.Speed = SpeedConfig{Min: 4, Max: 8}
	},
	"tiny": func(c *Config) {
		c.Diameter = 60
		c.Speed = SpeedConfig{Min: 0.5, Max: 2}
	},
	"retro": func(c *Config) {
		c.Theme = "retro"
		c.FPS = 24
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
