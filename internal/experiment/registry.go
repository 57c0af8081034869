package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/qrand/internal/qrand"
	"github.com/san-kum/qrand/internal/source"
)

type Registry struct {
	sources map[string]func(Config) (qrand.Source, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		sources: make(map[string]func(Config) (qrand.Source, error)),
	}

	r.sources["coin"] = func(cfg Config) (qrand.Source, error) {
		return source.NewCoin(cfg.Seed), nil
	}
	r.sources["biased"] = func(cfg Config) (qrand.Source, error) {
		return source.NewBiasedCoin(cfg.Angle, cfg.Seed), nil
	}
	r.sources["qutrit"] = func(cfg Config) (qrand.Source, error) {
		return source.NewQutrit(cfg.Seed), nil
	}
	r.sources["noisy"] = func(cfg Config) (qrand.Source, error) {
		return source.NewNoisy(source.NewCoin(cfg.Seed), cfg.ErrorRate, cfg.Seed+1)
	}
	r.sources["mitigated"] = func(cfg Config) (qrand.Source, error) {
		var base qrand.Source = source.NewCoin(cfg.Seed)
		if cfg.ErrorRate > 0 {
			noisy, err := source.NewNoisy(base, cfg.ErrorRate, cfg.Seed+1)
			if err != nil {
				return nil, err
			}
			base = noisy
		}
		return source.NewMitigated(base, cfg.Shots)
	}

	return r
}

func (r *Registry) GetSource(cfg Config) (qrand.Source, error) {
	fn, ok := r.sources[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", cfg.Source)
	}
	return fn(cfg)
}

func (r *Registry) ListSources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
