package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/envinfo/internal/application"
	"github.com/eugenenazirov/envinfo/internal/config"
	"github.com/eugenenazirov/envinfo/internal/container"
	"github.com/eugenenazirov/envinfo/internal/logging"
)

var version = "dev"

func main() {
	kingpinApp := kingpin.New("containerinfo", "Reports the execution context and dumps every environment variable unmasked")
	kingpinApp.Version(version)
	kingpinApp.HelpFlag.Short('h')
	kingpinApp.Help += fmt.Sprintf("\n\nThe context is read from %s; %q is reported when it does not exist.", container.DefaultMarkerPath, container.HostLabel)

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	run(config.FromEnviron(os.Environ()), os.Stdout)
}

// run never fails the process; problems are logged and the exit status stays 0.
func run(env config.Env, out io.Writer, opts ...application.AppOption) {
	logger, err := logging.New(logging.WithEncoding("console"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(env, out, logger, opts...).Inspect(); err != nil {
		logger.Error("failed to print diagnostics", zap.Error(err))
	}
}
