package main

import (
	"fmt"

	"github.com/iburimskiy/cpowgraph/internal/render"
	"github.com/iburimskiy/cpowgraph/internal/view"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	planeName  string
	imageSize  int
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the curve to a PNG file without opening a window",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&outputPath, "out", "o", "graph.png", "Output file path")
	cmd.Flags().StringVar(&planeName, "plane", "free", "Camera: free, xy, xz or yz")
	cmd.Flags().IntVar(&imageSize, "size", render.DefaultSize, "Image width and height in pixels")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	plane, ok := view.ParsePlane(planeName)
	if !ok {
		return fmt.Errorf("invalid plane: %s (must be free, xy, xz or yz)", planeName)
	}

	logger := newLogger()

	c, err := curveFromFlags(logger)
	if err != nil {
		return err
	}

	if err = render.SavePNG(outputPath, c, plane.Camera(), imageSize); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.WithFields(l.StringField("path", outputPath), l.StringField("plane", plane.String())).Info("exported")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)

	return nil
}
