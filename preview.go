package main

import (
	"fmt"

	"github.com/iburimskiy/cpowgraph/internal/preview"
	"github.com/spf13/cobra"
)

var previewOpts = preview.DefaultOptions()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Plot the real and imaginary parts in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if previewOpts.Width < 10 || previewOpts.Height < 3 {
				return fmt.Errorf("preview needs at least 10x3 cells, got %dx%d", previewOpts.Width, previewOpts.Height)
			}

			c, err := curveFromFlags(newLogger())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), preview.Render(c, previewOpts))

			return nil
		},
	}

	defaults := preview.DefaultOptions()
	cmd.Flags().IntVar(&previewOpts.Width, "width", defaults.Width, "Chart width in columns")
	cmd.Flags().IntVar(&previewOpts.Height, "height", defaults.Height, "Chart height in rows")

	return cmd
}
