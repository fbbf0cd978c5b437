package graft

import (
	"reflect"
	"slices"
	"strings"
)

// registry maps a type key to the scope that produces it. A registry is never
// written after construction, so it is shared freely between containers.
type registry map[reflect.Type]scope

func emptyRegistry() registry {
	return registry{}
}

func singleEntry(key reflect.Type, s scope) registry {
	return registry{key: s}
}

// mergeRegistries returns the union of base and overlay. Keys present in both
// take overlay's scope. Neither input is modified.
func mergeRegistries(base, overlay registry) registry {
	switch {
	case len(overlay) == 0:
		return base
	case len(base) == 0:
		return overlay
	}

	merged := make(registry, len(base)+len(overlay))
	for k, s := range base {
		merged[k] = s
	}
	for k, s := range overlay {
		merged[k] = s
	}
	return merged
}

// keys returns the registered types ordered by their string form.
func (r registry) keys() []reflect.Type {
	out := make([]reflect.Type, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
