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

// BumpReport is the output of the bump command.
type BumpReport struct {
	Previous  string          `json:"previous" yaml:"previous"`
	Version   *semver.Version `json:"version" yaml:"version"`
	Component string          `json:"component" yaml:"component"`
	Count     int64           `json:"count" yaml:"count"`
}

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increase the major, minor, or patch component of a version",
		ArgsUsage:             "major|minor|patch VERSION",
		Description: `Increase one component of a version. A major bump resets minor and patch
to zero and a minor bump resets patch, matching semantic-versioning
conventions. A patch bump resets nothing.

# Examples

  versctl bump major 1.5.7            # 2.0.0
  versctl bump minor v1.5.7           # v1.6.0
  versctl bump --count 3 patch 1.5.7  # 1.5.10
  versctl bump --label rc.1 minor 2.0.0`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "How much to increase the component by",
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Pre-release label to set on the result (empty clears it)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected COMPONENT and VERSION arguments, got %d", cmd.Args().Len())
			}
			component := cmd.Args().Get(0)
			input := cmd.Args().Get(1)
			count := cmd.Int64("count")

			v, err := semver.Parse(input)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", input, err)
			}
			previous := v.String()

			switch component {
			case "major":
				_, err = v.IncreaseMajor(count)
			case "minor":
				_, err = v.IncreaseMinor(count)
			case "patch":
				_, err = v.IncreasePatch(count)
			default:
				return fmt.Errorf("unknown component %q (must be major, minor, or patch)", component)
			}
			if err != nil {
				return fmt.Errorf("failed to bump %s of %q by %d: %w", component, input, count, err)
			}

			if cmd.IsSet("label") {
				if _, err := v.SetLabel(cmd.String("label")); err != nil {
					return fmt.Errorf("failed to set label: %w", err)
				}
			}

			slog.Info("bumped version",
				"previous", previous,
				"version", v.String(),
				"component", component,
				"count", count)

			report := BumpReport{
				Previous:  previous,
				Version:   v,
				Component: component,
				Count:     count,
			}

			w, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Serialize(report); err != nil {
				return fmt.Errorf("failed to serialize bump report: %w", err)
			}
			return nil
		},
	}
}
