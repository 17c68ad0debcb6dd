// Command graze computes the area reachable by an animal tethered to the
// outside of a regular polygonal fence.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/graze/internal/config"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "graze",
		Short: "Compute the grazing area of a goat tethered to a polygonal fence",
		Long: `graze computes, exactly, the area a goat can reach when its rope of unit
length is tied to the outside of a regular polygon. The rope wraps around
the polygon's vertices, and the region is reported as a sum of circular
sectors in multiples of π.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				zcfg := zap.NewProductionConfig()
				if a.verbose {
					zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := zcfg.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("configuration loaded",
				zap.String("path", a.configPath),
				zap.Int("sides", cfg.Sides),
				zap.String("position", cfg.Position))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to configuration file")

	root.AddCommand(newComputeCmd(a), newSweepCmd(a))
	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
