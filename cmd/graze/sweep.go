package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/graze"
	"honnef.co/go/graze/internal/config"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		common   commonFlags
		minSides int
		maxSides int
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute the grazing area for a range of side counts",
		Example: `  graze sweep --min 3 --max 20 --position 1/2
  graze sweep -p 0 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			fs := cmd.Flags()
			common.apply(fs, &cfg)
			if fs.Changed("min") {
				cfg.Sweep.Min = minSides
			}
			if fs.Changed("max") {
				cfg.Sweep.Max = maxSides
			}
			if fs.Changed("workers") {
				cfg.Sweep.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Sweep.Validate(); err != nil {
				return err
			}

			pos, err := graze.ParsePosition(cfg.Position)
			if err != nil {
				return err
			}
			results, err := sweep(cmd.Context(), a.logger, cfg.Sweep, pos)
			if err != nil {
				return err
			}

			reports := make([]Report, len(results))
			for i, res := range results {
				reports[i] = newReport(res, cfg.Precision, false)
			}
			if cfg.Format == config.FormatText {
				return writeTable(cmd.OutOrStdout(), reports)
			}
			return encode(cmd.OutOrStdout(), cfg.Format, reports)
		},
	}
	common.register(cmd.Flags())
	cmd.Flags().IntVar(&minSides, "min", 0, "smallest number of sides")
	cmd.Flags().IntVar(&maxSides, "max", 0, "largest number of sides")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "number of concurrent computations")
	return cmd
}

// sweep computes the result for every side count in [sc.Min, sc.Max], at
// most sc.Workers at a time. Results are ordered by side count.
func sweep(ctx context.Context, logger *zap.Logger, sc config.SweepConfig, position *big.Rat) ([]graze.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]graze.Result, sc.Max-sc.Min+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.Workers)
	for i := range results {
		sides := sc.Min + i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Compute does not retain or modify position.
			res, err := graze.Compute(sides, position)
			if err != nil {
				return fmt.Errorf("sides %d: %w", sides, err)
			}
			logger.Debug("computed sweep entry",
				zap.Int("sides", sides),
				zap.Int("circles", res.Circles()),
				zap.String("area", res.Area.RatString()))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("sweep complete",
		zap.Int("min", sc.Min),
		zap.Int("max", sc.Max),
		zap.String("position", position.RatString()))
	return results, nil
}

func writeTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIDES\tCIRCLES\tLEFT\tRIGHT\tAREA (π)\tDECIMAL (π)")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n", r.Sides, r.Circles, r.Left, r.Right, r.Area, r.Decimal)
	}
	return tw.Flush()
}
