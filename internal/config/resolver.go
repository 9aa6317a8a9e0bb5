package config

import (
	"strconv"
	"strings"
)

var truthy = map[string]struct{}{
	"true": {},
	"yes":  {},
	"1":    {},
	"on":   {},
}

// Resolver provides typed, side-effect free accessors over an Env snapshot.
type Resolver struct {
	env Env
}

// NewResolver wraps the provided snapshot.
func NewResolver(env Env) Resolver {
	return Resolver{env: env}
}

// Lookup returns an optional value without applying a default.
func (r Resolver) Lookup(key string) (string, bool) {
	return r.env.Lookup(key)
}

// String returns the value of key, or def when the variable is absent.
// A variable that is set to the empty string is returned as is.
func (r Resolver) String(key, def string) string {
	if value, ok := r.env.Lookup(key); ok {
		return value
	}
	return def
}

// Required returns the value of key or a *MissingRequiredError when it is absent.
func (r Resolver) Required(key string) (string, error) {
	value, ok := r.env.Lookup(key)
	if !ok {
		return "", &MissingRequiredError{Key: key}
	}
	return value, nil
}

// Bool reports whether key holds one of "true", "yes", "1" or "on" (any case).
// Every other value, including unrecognised ones, is false.
func (r Resolver) Bool(key string, def bool) bool {
	raw := r.String(key, strconv.FormatBool(def))
	_, ok := truthy[strings.ToLower(raw)]
	return ok
}

// Int parses key as a base 10 integer. When the value is not an integer the
// default is returned together with a Warning describing the fallback.
func (r Resolver) Int(key string, def int) (int, *Warning) {
	raw, ok := r.env.Lookup(key)
	if !ok {
		return def, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def, &Warning{Key: key, Value: raw, Default: def}
	}
	return value, nil
}
