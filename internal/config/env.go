package config

import (
	"maps"
	"slices"
	"strings"
)

// Env is an immutable snapshot of environment variables. Keys are case sensitive.
type Env struct {
	vars map[string]string
}

// FromEnviron builds a snapshot from "KEY=VALUE" entries as returned by os.Environ.
// Entries without a name are skipped.
func FromEnviron(environ []string) Env {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue
		}
		vars[key] = value
	}
	return Env{vars: vars}
}

// FromMap builds a snapshot from a copy of the provided map.
func FromMap(m map[string]string) Env {
	return Env{vars: maps.Clone(m)}
}

// Lookup returns the value stored under key and whether it is present.
func (e Env) Lookup(key string) (string, bool) {
	value, ok := e.vars[key]
	return value, ok
}

// Keys returns the variable names in lexicographic order.
func (e Env) Keys() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Len reports the number of variables in the snapshot.
func (e Env) Len() int {
	return len(e.vars)
}
