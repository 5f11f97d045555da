/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-kit/pkg/semver"
)

// ParseReport is the component breakdown produced by the parse command.
type ParseReport struct {
	Input   string          `json:"input" yaml:"input"`
	Version *semver.Version `json:"version" yaml:"version"`
	Major   int64           `json:"major" yaml:"major"`
	Minor   int64           `json:"minor" yaml:"minor"`
	Patch   int64           `json:"patch" yaml:"patch"`
	Label   string          `json:"label,omitempty" yaml:"label,omitempty"`
	Strict  bool            `json:"strict" yaml:"strict"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Break a version string into its components",
		ArgsUsage:             "VERSION",
		Description: `Parse a version string and report its components. Strictness is inferred
from the input: "v1.2.3" is loose, "1.2.3" is strict.

# Examples

  versctl parse v1.2.3-alpha.1
  versctl parse --format json -o version.json 1.2.3`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one VERSION argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()

			v, err := semver.Parse(input)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", input, err)
			}

			slog.Debug("parsed version", "input", input, "version", v.String())

			report := ParseReport{
				Input:   input,
				Version: v,
				Major:   v.Major(),
				Minor:   v.Minor(),
				Patch:   v.Patch(),
				Label:   v.Label(),
				Strict:  v.Strict(),
			}

			w, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Serialize(report); err != nil {
				return fmt.Errorf("failed to serialize parse report: %w", err)
			}
			return nil
		},
	}
}
