package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dvllgmz/escapelab/internal/plane"
)

const (
	DefaultStep          = 0.005
	DefaultMaxIterations = 50
)

type Config struct {
	Variant       string       `yaml:"variant"`
	MaxIterations int          `yaml:"max_iterations"`
	Region        RegionConfig `yaml:"region"`
	Julia         JuliaConfig  `yaml:"julia"`
}

type RegionConfig struct {
	TopLeft     PointConfig `yaml:"top_left"`
	BottomRight PointConfig `yaml:"bottom_right"`
	Step        float64     `yaml:"step"`
}

type PointConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

type JuliaConfig struct {
	CRe float64 `yaml:"c_re"`
	CIm float64 `yaml:"c_im"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:       "mandelbrot",
		MaxIterations: DefaultMaxIterations,
		Region: RegionConfig{
			TopLeft:     PointConfig{Re: -2, Im: 1.25},
			BottomRight: PointConfig{Re: 0.75, Im: -1.25},
			Step:        DefaultStep,
		},
		Julia: JuliaConfig{CRe: -0.8, CIm: 0.156},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PlaneRegion converts the yaml region to the sampling region used by
// the grid generator.
func (c *Config) PlaneRegion() plane.Region {
	return plane.Region{
		TopLeft:     complex(c.Region.TopLeft.Re, c.Region.TopLeft.Im),
		BottomRight: complex(c.Region.BottomRight.Re, c.Region.BottomRight.Im),
		Step:        c.Region.Step,
	}
}

// JuliaC returns the fixed Julia parameter.
func (c *Config) JuliaC() complex128 {
	return complex(c.Julia.CRe, c.Julia.CIm)
}
