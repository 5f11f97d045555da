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

// CompareReport is the output of the compare command.
type CompareReport struct {
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Result string `json:"result" yaml:"result"`
	// Order is the conventional -1/0/1 comparator value.
	Order int `json:"order" yaml:"order"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Order two versions",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare LEFT against RIGHT over (major, minor, patch), in that priority.
The result says where LEFT stands: "newer", "older", or "current".

Pre-release labels are not considered: 1.0.0-alpha and 1.0.0 compare as
current. Strictness ("v" prefix) is ignored as well.

# Examples

  versctl compare 1.2.3 1.2.4     # older
  versctl compare v2.0.0 1.9.9    # newer`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected LEFT and RIGHT arguments, got %d", cmd.Args().Len())
			}
			left := cmd.Args().Get(0)
			right := cmd.Args().Get(1)

			lv, err := semver.Parse(left)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", left, err)
			}
			rv, err := semver.Parse(right)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", right, err)
			}

			r := lv.Compare(rv)
			slog.Debug("compared versions", "left", left, "right", right, "result", r.String())

			report := CompareReport{
				Left:   left,
				Right:  right,
				Result: r.String(),
				Order:  int(r),
			}

			w, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Serialize(report); err != nil {
				return fmt.Errorf("failed to serialize compare report: %w", err)
			}
			return nil
		},
	}
}
