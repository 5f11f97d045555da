/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-kit/pkg/logging"
)

const (
	name           = "versctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/NVIDIA/version-kit/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd assembles the base command with all subcommands.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "Inspect, validate, and manipulate semantic version strings",
		Description: `versctl works with version identifiers of the form MAJOR.MINOR.PATCH[-label],
optionally prefixed by "v". Strictness follows the input: a "v" prefix is
kept on output when present and rejected-free when absent.

# Commands

check   - validate a version string against the grammar
parse   - break a version string into its components
bump    - increase the major, minor, or patch component
compare - order two versions (labels are not considered)
image   - read the version carried by a container image tag`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			parseCmd(),
			bumpCmd(),
			compareCmd(),
			imageCmd(),
		},
	}
}

// Run executes the CLI. It is called by main.main and handles SIGINT/SIGTERM
// by cancelling the command context.
func Run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return rootCmd().Run(ctx, args)
}
