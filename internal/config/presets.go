package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"rest": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Theta: -math.Pi / 2, ThetaDot: 0, Radius: DefaultRadius, Mass: DefaultMass,
	},
	"small": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Theta: -math.Pi/2 + 0.2, ThetaDot: 0, Radius: DefaultRadius, Mass: DefaultMass,
	},
	"horizontal": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Theta: math.Pi, ThetaDot: 0, Radius: DefaultRadius, Mass: DefaultMass,
	},
	"spinning": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Theta: -math.Pi / 2, ThetaDot: 0.5, Radius: DefaultRadius, Mass: DefaultMass,
	},
	"smooth": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: 60,
		Theta: DefaultTheta, ThetaDot: 0, Radius: DefaultRadius, Mass: DefaultMass,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
