package main

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-decomposer"
	"github.com/spf13/cobra"
)

type decomposeFlags struct {
	resolution string
	maxDegree  int
	degree     int
	table      bool
}

func (df *decomposeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&df.resolution, "resolution", string(decomposer.ResolutionFine), "trend resolution (fine|coarse)")
	cmd.Flags().IntVar(&df.maxDegree, "max-degree", 8, "highest trend degree searched")
	cmd.Flags().IntVar(&df.degree, "degree", 0, "pin the trend degree, 0 searches")
	cmd.Flags().BoolVar(&df.table, "table", false, "print a model summary instead of json")
}

// apply overrides config file options with flags set on the command line
func (df *decomposeFlags) apply(cmd *cobra.Command, opt *decomposer.Options) (*decomposer.Options, error) {
	if cmd.Flags().Changed("resolution") {
		opt.Resolution = decomposer.TrendResolution(df.resolution)
	}
	if cmd.Flags().Changed("max-degree") {
		opt.TrendOptions.MaxDegree = df.maxDegree
	}
	if cmd.Flags().Changed("degree") {
		opt.TrendOptions.Degree = df.degree
	}
	return opt.Validate()
}

func (f *rootFlags) fitDecomposer(cmd *cobra.Command, df *decomposeFlags) (*decomposer.Decomposer, error) {
	td, err := f.loadDataset(cmd)
	if err != nil {
		return nil, err
	}
	opt, err := f.loadOptions()
	if err != nil {
		return nil, err
	}
	if df != nil {
		if opt, err = df.apply(cmd, opt); err != nil {
			return nil, err
		}
	}

	d, err := decomposer.New(opt)
	if err != nil {
		return nil, err
	}
	if err := d.Fit(td); err != nil {
		return nil, err
	}
	return d, nil
}

func newDecomposeCmd(flags *rootFlags) *cobra.Command {
	df := &decomposeFlags{}
	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Split the series into trend, seasonal and residual components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.fitDecomposer(cmd, df)
			if err != nil {
				return err
			}
			if df.table {
				m, err := d.Model()
				if err != nil {
					return err
				}
				return flags.withOutput(cmd, func(w io.Writer) error {
					return m.TablePrint(w, "", "  ")
				})
			}
			return flags.writeJSON(cmd, d.Results())
		},
	}
	df.register(cmd)
	return cmd
}

func newSmoothCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Smooth the series",
	}

	var window int
	ma := &cobra.Command{
		Use:   "ma",
		Short: "Trailing simple moving average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := flags.loadDataset(cmd)
			if err != nil {
				return err
			}
			res, err := td.MovingAverage(window)
			if err != nil {
				return err
			}
			return flags.writeJSON(cmd, res)
		},
	}
	ma.Flags().IntVarP(&window, "window", "w", 3, "number of samples averaged")

	var alpha float64
	ema := &cobra.Command{
		Use:   "ema",
		Short: "Single exponential smoothing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			td, err := flags.loadDataset(cmd)
			if err != nil {
				return err
			}
			res, err := td.ExponentialSmoothing(alpha)
			if err != nil {
				return err
			}
			return flags.writeJSON(cmd, res)
		},
	}
	ema.Flags().Float64VarP(&alpha, "alpha", "a", 0.5, "smoothing factor in (0, 1]")

	cmd.AddCommand(ma, ema)
	return cmd
}

func newAnomaliesCmd(flags *rootFlags) *cobra.Command {
	df := &decomposeFlags{}
	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "List samples whose residual falls outside the Tukey fences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.fitDecomposer(cmd, df)
			if err != nil {
				return err
			}
			anomalies, err := d.DetectAnomalies()
			if err != nil {
				return err
			}
			return flags.writeJSON(cmd, anomalies)
		},
	}
	df.register(cmd)
	return cmd
}

func newForecastCmd(flags *rootFlags) *cobra.Command {
	df := &decomposeFlags{}
	var horizon int
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Extrapolate the trend and seasonal profile past the end of the series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.fitDecomposer(cmd, df)
			if err != nil {
				return err
			}
			res, err := d.Forecast(horizon)
			if err != nil {
				return err
			}
			return flags.writeJSON(cmd, res)
		},
	}
	df.register(cmd)
	cmd.Flags().IntVar(&horizon, "horizon", 10, "number of samples to forecast")
	return cmd
}

func newPlotCmd(flags *rootFlags) *cobra.Command {
	df := &decomposeFlags{}
	var (
		out   string
		title string
		fit   bool
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the series or its decomposition as an html chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fit {
				d, err := flags.fitDecomposer(cmd, df)
				if err != nil {
					return err
				}
				if err := d.PlotFit(out); err != nil {
					return err
				}
			} else {
				td, err := flags.loadDataset(cmd)
				if err != nil {
					return err
				}
				if err := decomposer.PlotSeries(out, title, td); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}
	df.register(cmd)
	cmd.Flags().StringVar(&out, "out", "series.html", "html file to write")
	cmd.Flags().StringVar(&title, "title", "Series", "chart title")
	cmd.Flags().BoolVar(&fit, "fit", false, "render the decomposition instead of the raw series")
	return cmd
}
