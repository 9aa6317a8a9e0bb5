// Package config resolves runtime configuration from a snapshot of the process
// environment. It exposes typed accessors (string, bool, int) with defaults and
// required-field checks, and a Resolve function that produces the strongly
// typed settings consumed by the rest of the application.
package config
