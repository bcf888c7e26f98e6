package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	flag.Usage = cli.PrintHelp
	cfg, args, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		ui.Fail(err.Error())
		if errors.Is(err, config.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	opts := logging.DefaultOptions()
	opts.Level = cfg.Level
	logger := logging.New(os.Stderr, opts)
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	// Hand the remaining args to the CLI runner.
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Config: cfg,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
