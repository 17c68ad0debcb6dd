package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"honnef.co/go/graze"
	"honnef.co/go/graze/internal/config"
)

// commonFlags are shared by compute and sweep and override the
// configuration file when set.
type commonFlags struct {
	position  string
	precision int
	format    string
}

func (f *commonFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.position, "position", "p", "", `anchor position along an edge, in [0, 1] (e.g. "1/2")`)
	fs.IntVar(&f.precision, "precision", 0, "fractional digits of decimal output")
	fs.StringVarP(&f.format, "format", "o", "", "output format: text, yaml or json")
}

func (f *commonFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("position") {
		cfg.Position = f.position
	}
	if fs.Changed("precision") {
		cfg.Precision = f.precision
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
}

func newComputeCmd(a *app) *cobra.Command {
	var (
		common  commonFlags
		sides   int
		sectors bool
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the grazing area for one polygon and anchor",
		Example: `  graze compute --sides 4 --position 0
  graze compute -n 3 -p 1/2 -o yaml --sectors
  graze compute -n 6 -p 1/4 --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			common.apply(cmd.Flags(), &cfg)
			if cmd.Flags().Changed("sides") {
				cfg.Sides = sides
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			pos, err := graze.ParsePosition(cfg.Position)
			if err != nil {
				return err
			}
			res, err := graze.Compute(cfg.Sides, pos)
			if err != nil {
				return fmt.Errorf("compute: %w", err)
			}
			logResult(a.logger, res)

			if save {
				cfg.Position = res.Position.RatString()
				if err := cfg.Save(a.configPath); err != nil {
					return err
				}
				a.logger.Info("saved configuration", zap.String("path", a.configPath))
			}

			r := newReport(res, cfg.Precision, sectors)
			if cfg.Format == config.FormatText {
				return writeText(cmd.OutOrStdout(), r, cfg.Precision)
			}
			return encode(cmd.OutOrStdout(), cfg.Format, r)
		},
	}
	common.register(cmd.Flags())
	cmd.Flags().IntVarP(&sides, "sides", "n", 0, "number of sides of the fence (at least 3)")
	cmd.Flags().BoolVar(&sectors, "sectors", false, "include individual sectors in yaml and json output")
	cmd.Flags().BoolVar(&save, "save", false, "store the resolved settings in the configuration file")
	return cmd
}

func logResult(logger *zap.Logger, res graze.Result) {
	if logger.Core().Enabled(zap.DebugLevel) {
		for i, s := range res.Sectors {
			logger.Debug("sector",
				zap.Int("sides", res.Sides),
				zap.String("side", sideOf(res, i)),
				zap.String("radius", s.Radius.RatString()),
				zap.String("sweep", s.SweepAngle.RatString()))
		}
	}
	logger.Info("computed grazing area",
		zap.Int("sides", res.Sides),
		zap.String("position", res.Position.RatString()),
		zap.Bool("on_vertex", res.Anchor.OnVertex),
		zap.Int("circles", res.Circles()),
		zap.String("area", res.Area.RatString()))
}
