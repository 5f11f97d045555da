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

	"github.com/NVIDIA/version-kit/pkg/imageref"
)

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "image",
		EnableShellCompletion: true,
		Usage:                 "Read the version carried by a container image tag",
		ArgsUsage:             "REFERENCE",
		Description: `Parse a container image reference and interpret its tag as a semantic
version. The reference is normalized the way container runtimes do, so
Docker Hub shorthands work.

# Examples

  versctl image nvcr.io/nvidia/gpu-operator:v25.3.0
  versctl image --format json nginx:1.27.4`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one REFERENCE argument, got %d", cmd.Args().Len())
			}
			ref := cmd.Args().First()

			r, err := imageref.Parse(ref)
			if err != nil {
				return fmt.Errorf("failed to read version from %q: %w", ref, err)
			}

			slog.Debug("parsed image reference",
				"registry", r.Registry,
				"repository", r.Repository,
				"version", r.Version.String())

			w, err := newReportWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Serialize(r); err != nil {
				return fmt.Errorf("failed to serialize image report: %w", err)
			}
			return nil
		},
	}
}
