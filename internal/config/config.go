package config

import (
	"math"
	"os"

	"github.com/san-kum/pendsim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 900
	DefaultFPS      = 10
	DefaultTheta    = math.Pi + 0.5
	DefaultThetaDot = 0.0
	DefaultRadius   = 5.0
	DefaultMass     = 1.0
	DefaultTitle    = "pendsim"
)

type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FPS      int     `yaml:"fps"`
	Theta    float64 `yaml:"theta"`
	ThetaDot float64 `yaml:"theta_dot"`
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Title    string  `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FPS:      DefaultFPS,
		Theta:    DefaultTheta,
		ThetaDot: DefaultThetaDot,
		Radius:   DefaultRadius,
		Mass:     DefaultMass,
		Title:    DefaultTitle,
	}
}

// LoadInto reads a YAML file over cfg; keys missing from the file keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings that would divide by zero or feed NaN into the
// render loop.
func (c *Config) Validate() error {
	if err := dynamo.Positive("width", float64(c.Width)); err != nil {
		return err
	}
	if err := dynamo.Positive("height", float64(c.Height)); err != nil {
		return err
	}
	if err := dynamo.Positive("fps", float64(c.FPS)); err != nil {
		return err
	}
	if err := dynamo.Positive("radius", c.Radius); err != nil {
		return err
	}
	if err := dynamo.Positive("mass", c.Mass); err != nil {
		return err
	}
	if err := dynamo.Finite("theta", c.Theta); err != nil {
		return err
	}
	return dynamo.Finite("theta_dot", c.ThetaDot)
}
