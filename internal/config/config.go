package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples   = 100
	DefaultShots     = 5
	DefaultAlpha     = 0.05
	DefaultErrorRate = 0.05
)

type Config struct {
	Source      string  `yaml:"source"`
	Samples     int     `yaml:"samples"`
	Seed        int64   `yaml:"seed"`
	Angle       float64 `yaml:"angle"`       // Ry rotation in radians
	Probability float64 `yaml:"probability"` // P(1); overrides angle when set
	Shots       int     `yaml:"shots"`
	ErrorRate   float64 `yaml:"error_rate"`
	Alpha       float64 `yaml:"alpha"`
}

func DefaultConfig() *Config {
	return &Config{
		Source:    "coin",
		Samples:   DefaultSamples,
		Shots:     DefaultShots,
		ErrorRate: DefaultErrorRate,
		Alpha:     DefaultAlpha,
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
