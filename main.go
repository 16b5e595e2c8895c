package main

import (
	"fmt"
	"os"

	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/game"
	"github.com/iburimskiy/cpowgraph/internal/menu"
	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	settings = config.DefaultSettings()
	verbose  bool
	noMenu   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cpowgraph",
		Short: "Graph y + zi = (base)^x in 3D",
		Long: `cpowgraph plots the complex power y + zi = (base)^x over a real interval
of x. Negative bases leave the real line and spiral through the imaginary
plane; the window lets you move the base, the x interval and the camera.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	rootCmd.PersistentFlags().Float64Var(&settings.Base, "base", config.DefaultBase, "Initial base")
	rootCmd.PersistentFlags().Float64Var(&settings.Lo, "lo", config.DefaultLo, "Initial lower end of the x interval")
	rootCmd.PersistentFlags().Float64Var(&settings.Hi, "hi", config.DefaultHi, "Initial upper end of the x interval")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to the console")
	rootCmd.Flags().BoolVar(&noMenu, "no-menu", false, "Open the window without the text menu")

	rootCmd.AddCommand(newExportCmd(), newPreviewCmd())

	return rootCmd
}

func newLogger() l.Wrapper {
	if verbose {
		return l.NewConsoleLoggerWrapper()
	}

	return l.NewNopLoggerWrapper()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := newLogger()

	openWindow := func() error {
		g, err := game.New(settings, plot.NewEvaluator(logger), logger)
		if err != nil {
			return err
		}

		return g.Run()
	}

	if noMenu {
		return openWindow()
	}

	m := &menu.Menu{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Run:         openWindow,
		ClearScreen: true,
		Logger:      logger,
	}

	if err := m.Loop(); err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	return nil
}

// curveFromFlags evaluates the curve described by the shared flags.
func curveFromFlags(logger l.Wrapper) (*plot.Curve, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	iv, err := plot.NewInterval(settings.Lo, settings.Hi)
	if err != nil {
		return nil, err
	}

	return plot.NewEvaluator(logger).Evaluate(settings.Base, iv)
}
