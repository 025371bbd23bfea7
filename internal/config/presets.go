package config

import "sort"

// Presets are named stars, roughly spanning the main sequence.
var Presets = map[string]*Config{
	"sol": {
		Star: StarConfig{Mass: 1.0, Luminosity: 1.0},
	},
	"red_dwarf": {
		Star: StarConfig{Mass: 0.3, Luminosity: 0.01},
	},
	"k_dwarf": {
		Star: StarConfig{Mass: 0.7, Luminosity: 0.3},
	},
	"f_star": {
		Star: StarConfig{Mass: 1.3, Luminosity: 2.5},
	},
	"a_star": {
		Star: StarConfig{Mass: 2.0, Luminosity: 16.0},
	},
}

// GetPreset returns a full configuration for the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Star = p.Star
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
