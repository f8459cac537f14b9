package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	input       string
	timeColumn  string
	valueColumn string
	delimiter   string
	period      int
	config      string
	output      string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "decomposer",
		Short: "Smooth and decompose a univariate time series",
		Long: `Smooth and decompose a univariate time series read from a csv file into a
polynomial trend, a periodic seasonal profile and the residual.

Examples:
  decomposer decompose --input series.csv
  decomposer smooth ma --input series.csv --window 7
  decomposer forecast --input series.csv --horizon 24 --period 24
  decomposer plot --input series.csv --fit --out fit.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd, flags.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.input, "input", "i", "", "csv file with a header row, - reads stdin")
	pf.StringVar(&flags.timeColumn, "time-column", "timestamp", "name of the timestamp column")
	pf.StringVar(&flags.valueColumn, "value-column", "value", "name of the value column")
	pf.StringVar(&flags.delimiter, "delimiter", ",", "csv field delimiter")
	pf.IntVar(&flags.period, "period", 0, "seasonal period in samples, 0 detects it")
	pf.StringVar(&flags.config, "config", "", "json file with decomposition options")
	pf.StringVarP(&flags.output, "output", "o", "-", "output file, - writes stdout")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDecomposeCmd(flags),
		newSmoothCmd(flags),
		newAnomaliesCmd(flags),
		newForecastCmd(flags),
		newPlotCmd(flags),
		newVersionCmd(),
	)
	return root
}

func setupLogger(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
