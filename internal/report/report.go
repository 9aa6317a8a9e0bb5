// Package report renders the configuration summary and the diagnostic
// environment dump as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eugenenazirov/envinfo/internal/config"
	"github.com/eugenenazirov/envinfo/internal/mask"
)

const ruleWidth = 60

var rule = strings.Repeat("=", ruleWidth)

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Intro prints the program banner.
func Intro(w io.Writer) error {
	p := &printer{w: w}
	p.printf("\n🐹 envinfo\n")
	p.printf("📝 All configuration loaded from environment variables\n\n")
	return p.err
}

// ConfigHeader opens the configuration block.
func ConfigHeader(w io.Writer) error {
	p := &printer{w: w}
	p.printf("\n%s\n", rule)
	p.printf("🔧 Application Configuration\n")
	p.printf("%s\n", rule)
	return p.err
}

// ConfigBody prints the resolved settings with secrets masked and closes the block.
func ConfigBody(w io.Writer, cfg config.Config) error {
	p := &printer{w: w}
	p.printf("📦 Application:  %s\n", cfg.AppName)
	p.printf("🌍 Environment:   %s\n", cfg.AppEnv)
	p.printf("🐛 Debug Mode:    %t\n", cfg.AppDebug)
	p.printf("🔌 Port:          %d\n", cfg.AppPort)
	p.printf("💾 Database:      %s\n", mask.Display(cfg.DatabaseURL, cfg.HasDatabase, mask.URL))
	p.printf("🔑 API Key:       %s\n", mask.Display(cfg.APIKey, cfg.HasAPIKey, mask.Token))
	p.printf("%s\n\n", rule)
	return p.err
}

// ConfigError prints a resolution failure inside the configuration block.
func ConfigError(w io.Writer, err error) error {
	p := &printer{w: w}
	p.printf("❌ Error: %v\n", err)
	return p.err
}

// Status prints the post-summary lines: the debug notice, the running
// environment and the environment specific mode. In debug mode only variable
// names are listed; values are reserved for the explicit dump.
func Status(w io.Writer, cfg config.Config, env config.Env) error {
	p := &printer{w: w}
	if cfg.AppDebug {
		p.printf("⚠️  DEBUG MODE ENABLED - Verbose logging active\n")
		p.printf("   Environment variables (%d): %s\n\n", env.Len(), strings.Join(env.Keys(), ", "))
	}

	p.printf("✅ Application running in '%s' environment\n", cfg.AppEnv)
	p.printf("🚀 Ready to process requests!\n\n")
	p.printf("%s\n", ModeLine(cfg.AppEnv))
	p.printf("\n💡 Tip: Edit .env file directly for all local configuration changes!\n\n")
	return p.err
}

// ModeLine describes the behaviour associated with an environment name.
func ModeLine(appEnv string) string {
	switch appEnv {
	case "prod":
		return "🔒 Production mode: Enhanced security enabled"
	case "dev":
		return "🛠️  Development mode: Hot reload enabled"
	default:
		return fmt.Sprintf("📊 %s mode active", cases.Title(language.Und).String(appEnv))
	}
}

// Context prints the detected execution context.
func Context(w io.Writer, label string) error {
	p := &printer{w: w}
	p.printf("\n%s\n", rule)
	p.printf("🐳 Execution Context\n")
	p.printf("%s\n", rule)
	p.printf("📍 Running in:    %s\n\n", label)
	return p.err
}

// Dump prints every variable as KEY=VALUE in sorted key order. Values are
// not masked.
func Dump(w io.Writer, env config.Env) error {
	p := &printer{w: w}
	p.printf("%s\n", rule)
	p.printf("📋 Environment Variables (%d)\n", env.Len())
	p.printf("%s\n", rule)
	for _, key := range env.Keys() {
		value, _ := env.Lookup(key)
		p.printf("%s=%s\n", key, value)
	}
	p.printf("%s\n", rule)
	return p.err
}
