package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/accrete/internal/rng"
)

// Registry maps source names to seeded random source factories.
type Registry struct {
	sources map[string]func(seed int64) rng.Source
}

func NewRegistry() *Registry {
	r := &Registry{
		sources: make(map[string]func(int64) rng.Source),
	}

	r.sources["java"] = func(seed int64) rng.Source { return rng.NewJava(seed) }
	r.sources["go"] = func(seed int64) rng.Source { return rng.NewMath(seed) }

	return r
}

func (r *Registry) GetSource(name string, seed int64) (rng.Source, error) {
	fn, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", name)
	}
	return fn(seed), nil
}

func (r *Registry) ListSources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
