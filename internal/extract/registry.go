// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"

	"github.com/pdiddy/babynames/pkg/types"
)

// Registry maps each name to the first rank it was observed at.
type Registry struct {
	ranks map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ranks: make(map[string]string)}
}

// Observe records rank for name unless name was already seen. It reports
// whether the observation was kept.
func (r *Registry) Observe(name, rank string) bool {
	if _, ok := r.ranks[name]; ok {
		return false
	}
	r.ranks[name] = rank
	return true
}

// Sorted returns every entry ordered ascending by name.
func (r *Registry) Sorted() []types.RankedName {
	names := make([]string, 0, len(r.ranks))
	for name := range r.ranks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.RankedName, len(names))
	for i, name := range names {
		out[i] = types.RankedName{Name: name, Rank: r.ranks[name]}
	}
	return out
}
