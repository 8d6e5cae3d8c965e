// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/flategen/flategen/lib/fixture"
	"github.com/flategen/flategen/lib/payload"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var dataDir string
	var fixturesPath string
	var seed uint64
	var verbose bool

	flagSet := pflag.NewFlagSet("flategen", pflag.ContinueOnError)
	flagSet.StringVar(&dataDir, "data-dir", "data", "directory for payloads, containers, streams and the manifest")
	flagSet.StringVar(&fixturesPath, "fixtures", "", "YAML fixture registry (default: the built-in registry)")
	flagSet.Uint64Var(&seed, "seed", 0, "seed for reproducible payloads (default: OS randomness)")
	flagSet.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other tools.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("flategen %s\n", version)
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry := fixture.DefaultRegistry()
	if fixturesPath != "" {
		loaded, err := fixture.LoadRegistry(fixturesPath)
		if err != nil {
			return err
		}
		registry = loaded
	}

	var source io.Reader = payload.NewSource()
	if flagSet.Changed("seed") {
		source = payload.NewSeededSource(seed)
		logger.Debug("using seeded byte source", "seed", seed)
	}

	return fixture.Run(dataDir, registry, source, logger)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Print(`flategen — generate raw DEFLATE test fixtures

Writes, per fixture: the raw payload, its gzip container, and the
extracted DEFLATE stream, plus a manifest.json mapping fixture names
to .deflate files.

usage: flategen [flags]

flags:
`)
	fmt.Print(flagSet.FlagUsages())
}
