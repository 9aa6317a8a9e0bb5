package config

import "fmt"

// Environment variable names consumed by the application.
const (
	KeyAppName     = "APP_NAME"
	KeyAppEnv      = "APP_ENV"
	KeyAppDebug    = "APP_DEBUG"
	KeyAppPort     = "APP_PORT"
	KeyDatabaseURL = "DATABASE_URL"
	KeyAPIKey      = "API_KEY"
)

const (
	defaultAppEnv   = "dev"
	defaultAppDebug = false
	defaultAppPort  = 8000
)

// Config aggregates runtime configuration resolved from the environment.
type Config struct {
	AppName     string
	AppEnv      string
	AppDebug    bool
	AppPort     int
	DatabaseURL string
	HasDatabase bool
	APIKey      string
	HasAPIKey   bool
}

// Resolve extracts configuration from the snapshot. Coercion problems do not
// fail resolution; they are returned as warnings for the caller to surface.
// The only error is a missing APP_NAME.
func Resolve(env Env) (Config, []*Warning, error) {
	r := NewResolver(env)

	name, err := r.Required(KeyAppName)
	if err != nil {
		return Config{}, nil, fmt.Errorf("resolve configuration: %w", err)
	}

	cfg := Config{
		AppName:  name,
		AppEnv:   r.String(KeyAppEnv, defaultAppEnv),
		AppDebug: r.Bool(KeyAppDebug, defaultAppDebug),
	}

	var warnings []*Warning
	port, warning := r.Int(KeyAppPort, defaultAppPort)
	if warning != nil {
		warnings = append(warnings, warning)
	}
	cfg.AppPort = port

	cfg.DatabaseURL, cfg.HasDatabase = r.Lookup(KeyDatabaseURL)
	cfg.APIKey, cfg.HasAPIKey = r.Lookup(KeyAPIKey)

	return cfg, warnings, nil
}

// Debug reports whether debug mode is enabled without requiring the rest of
// the configuration to resolve.
func Debug(env Env) bool {
	return NewResolver(env).Bool(KeyAppDebug, defaultAppDebug)
}
