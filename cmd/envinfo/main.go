package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/envinfo/internal/application"
	"github.com/eugenenazirov/envinfo/internal/config"
	"github.com/eugenenazirov/envinfo/internal/logging"
)

var version = "dev"

func main() {
	kingpinApp := kingpin.New("envinfo", "Prints the application configuration resolved from environment variables")
	kingpinApp.Version(version)
	kingpinApp.HelpFlag.Short('h')
	if vars, err := config.LoadCatalogue(); err == nil {
		kingpinApp.Help += "\n\n" + config.Usage(vars)
	}

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	os.Exit(run(config.FromEnviron(os.Environ()), os.Stdout))
}

// run prints the configuration summary and returns the process exit code.
func run(env config.Env, out io.Writer) int {
	logger, err := logging.New(
		logging.WithEncoding("console"),
		logging.WithDebug(config.Debug(env)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	return runWithLogger(env, out, logger)
}

func runWithLogger(env config.Env, out io.Writer, logger *zap.Logger) int {
	app := application.New(env, out, logger)
	if err := app.ShowConfig(); err != nil {
		if !errors.Is(err, config.ErrMissingRequired) {
			logger.Error("failed to print configuration", zap.Error(err))
		}
		return 1
	}
	return 0
}
