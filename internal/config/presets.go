package config

import "sort"

var Presets = map[string]*Config{
	"fair": {
		Source: "coin", Samples: 1000, Alpha: DefaultAlpha,
	},
	"biased-60-40": {
		Source: "biased", Samples: 1000, Probability: 0.4, Alpha: DefaultAlpha,
	},
	"biased-90-10": {
		Source: "biased", Samples: 1000, Probability: 0.1, Alpha: DefaultAlpha,
	},
	"mitigated": {
		Source: "mitigated", Samples: 1000, Shots: 5, ErrorRate: 0.05, Alpha: DefaultAlpha,
	},
	"noisy": {
		Source: "noisy", Samples: 1000, ErrorRate: 0.05, Alpha: DefaultAlpha,
	},
	"qutrit": {
		Source: "qutrit", Samples: 1000, Alpha: DefaultAlpha,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
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
