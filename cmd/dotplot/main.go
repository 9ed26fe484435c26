// Command dotplot reads numbers and draws them as a dotplot.
//
//	dotplot [flags] [file]
//
// Values are separated by commas (see --separator), any number per line.
// Without a file, or with "-", the values are read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"

	"github.com/vdobler/dotplot"
	"github.com/vdobler/dotplot/geom"
	"github.com/vdobler/dotplot/stat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotplot [flags] [file]",
		Short: "Draw a dotplot of numeric data",
		Long: `dotplot bins numbers into equally spaced stacks and draws every
observation as a dot on top of its stack.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	f := cmd.Flags()
	f.String("config", "", "Configuration file (default is ./dotplot.yaml if present)")
	f.String("env-file", "", "Load environment variables from this file")
	f.Int("num-stacks", dotplot.DefaultNumStacks, "Number of stacks")
	f.String("keys", "", "Explicit stack keys, comma separated and ascending")
	f.Float64("rotation", 0, "Rotation of the x tick labels in degrees")
	f.String("title", "", "Plot title")
	f.String("xlabel", "", "Label of the x axis")
	f.String("ylabel", "", "Label of the y axis (the axis is hidden without)")
	f.StringP("output", "o", dotplot.DefaultFilename, "Output file, the extension selects the format")
	f.Bool("show", false, "Open the saved plot in the system viewer")
	f.String("color", dotplot.DefaultTheme.Color, "Dot color, #rrggbb[aa] or a name")
	f.String("shape", dotplot.DefaultTheme.Shape, "Dot shape")
	f.String("separator", ",", "Field separator of the input")
	f.Bool("summary", false, "Print a per stack summary to stdout")
	f.String("log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	f.String("log-format", "console", "Log format (console or json)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	in, name := cmd.InOrStdin(), "stdin"
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return ewrap.Wrap(err, "open input")
		}
		defer file.Close()
		in, name = file, args[0]
	}

	data, err := readDataset(in, cfg.Separator[0])
	if err != nil {
		logger.Error().Err(err).Str("input", name).Msg("cannot read data")
		return err
	}
	logger.Debug().Str("input", name).Int("values", len(data)).Msg("data read")

	layout, err := dotplot.Compute(data, cfg.Options)
	if err != nil {
		logger.Error().Err(err).Msg("cannot compute dotplot")
		return err
	}
	if cfg.Summary {
		if err := writeSummary(cmd.OutOrStdout(), stat.Summarize(layout.Stacks)); err != nil {
			return err
		}
	}

	r := geom.NewRenderer(logger)
	r.Theme.Color, r.Theme.Shape = cfg.Color, cfg.Shape
	if err := r.Render(layout); err != nil {
		logger.Error().Err(err).Str("file", cfg.Filename).Msg("cannot draw dotplot")
		return err
	}
	logger.Info().Str("file", cfg.Filename).Int("values", len(data)).Msg("dotplot written")
	return nil
}

func writeSummary(w io.Writer, sum []stat.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "key\tcount\tncount\tfrac\tdistinct\t")
	for _, s := range sum {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%d\t\n",
			dotplot.FormatKey(s.X), s.Count, s.NCount, s.Frac, s.Distinct)
	}
	return tw.Flush()
}
