// Package config loads and validates render configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidResolution       = errors.New("config: width and height must be positive")
	ErrInvalidSamples          = errors.New("config: samples per pixel must be positive")
	ErrInvalidDepth            = errors.New("config: max depth must not be negative")
	ErrUnknownSampler          = errors.New("config: unknown sampler")
	ErrUnknownFilter           = errors.New("config: unknown filter")
	ErrUnknownDirectionSampler = errors.New("config: unknown direction sampler")
)

// FilterConfig selects the pixel reconstruction filter
type FilterConfig struct {
	Type   string  `yaml:"type"`   // box, triangle or gaussian
	Radius float64 `yaml:"radius"` // In pixels
}

// RenderConfig describes a complete render
type RenderConfig struct {
	Scene  string `yaml:"scene"`
	Output string `yaml:"output"`

	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	SamplesPerPixel int   `yaml:"samplesPerPixel"`
	MaxDepth        int   `yaml:"maxDepth"`
	Seed            int64 `yaml:"seed"`

	Sampler          string       `yaml:"sampler"`          // independent or stratified
	DirectionSampler string       `yaml:"directionSampler"` // uniform or cosine
	Filter           FilterConfig `yaml:"filter"`

	Workers  int `yaml:"workers"` // 0 uses every CPU
	TileSize int `yaml:"tileSize"`

	ScaleDifferentials      bool `yaml:"scaleDifferentials"`
	DisablePixelJitter      bool `yaml:"disablePixelJitter"`
	DisableWavelengthJitter bool `yaml:"disableWavelengthJitter"`
	DisableTextureFiltering bool `yaml:"disableTextureFiltering"`
	ForceDiffuse            bool `yaml:"forceDiffuse"`

	WriteAuxiliary bool `yaml:"writeAuxiliary"` // Also write albedo and normal images
	Checkpoint     bool `yaml:"checkpoint"`     // Write the image after every wave
	Quiet          bool `yaml:"quiet"`
}

// Default returns sensible default values
func Default() RenderConfig {
	return RenderConfig{
		Scene:              "default",
		Output:             "render.png",
		Width:              400,
		Height:             225,
		SamplesPerPixel:    64,
		MaxDepth:           5,
		Sampler:            "independent",
		DirectionSampler:   "uniform",
		Filter:             FilterConfig{Type: "box", Radius: 0.5},
		TileSize:           32,
		ScaleDifferentials: true,
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("while reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("while loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (RenderConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("while parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Validate checks every field that would make the render fail
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	switch c.Sampler {
	case "", "independent", "stratified":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSampler, c.Sampler)
	}
	switch c.DirectionSampler {
	case "", "uniform", "cosine":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirectionSampler, c.DirectionSampler)
	}
	switch c.Filter.Type {
	case "", "box", "triangle", "gaussian":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFilter, c.Filter.Type)
	}
	return nil
}

// AspectRatio returns width over height
func (c RenderConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
