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

// CheckReport is the output of the check command.
type CheckReport struct {
	Input  string `json:"input" yaml:"input"`
	Strict bool   `json:"strict" yaml:"strict"`
	Valid  bool   `json:"valid" yaml:"valid"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate a version string against the grammar",
		ArgsUsage:             "VERSION",
		Description: `Check whether a version string matches the accepted grammar.

By default the strict grammar applies, which rejects a leading "v" prefix.
Pass --loose to allow the prefix.

The command exits non-zero when the string is invalid, so it can gate CI
steps directly:

  versctl check 1.2.3
  versctl check --loose v1.2.3-rc.1`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "loose",
				Usage: "Allow a leading \"v\" prefix",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one VERSION argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()
			strict := !cmd.Bool("loose")

			report := CheckReport{
				Input:  input,
				Strict: strict,
				Valid:  semver.IsValid(input, strict),
			}

			slog.Debug("checked version string", "input", input, "strict", strict, "valid", report.Valid)

			w, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Serialize(report); err != nil {
				return fmt.Errorf("failed to serialize check report: %w", err)
			}

			if !report.Valid {
				return fmt.Errorf("%q is not a valid version string", input)
			}
			return nil
		},
	}
}
