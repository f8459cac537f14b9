package decomposer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aouyang1/go-decomposer/seasonal"
	"github.com/aouyang1/go-decomposer/trend"
	"github.com/aouyang1/go-decomposer/util"
)

// Model represents a serializeable format of a decomposition storing the options, the fit trend
// polynomial, the seasonal profile and enough of the training time range to forecast from
type Model struct {
	TrainStartTime time.Time              `json:"train_start_time"`
	TrainEndTime   time.Time              `json:"train_end_time"`
	Interval       time.Duration          `json:"interval"`
	NumSamples     int                    `json:"num_samples"`
	Options        *Options               `json:"options"`
	Trend          *trend.PolynomialModel `json:"trend_model"`
	Seasonal       *seasonal.Profile      `json:"seasonal_profile"`
}

// TablePrint writes a human readable summary of the model
func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sDecomposition:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining: %s to %s, %d samples every %s\n",
		prefix, util.IndentExpand(indent, 1),
		m.TrainStartTime.Format(time.RFC3339), m.TrainEndTime.Format(time.RFC3339),
		m.NumSamples, m.Interval); err != nil {
		return err
	}

	if m.Trend != nil {
		if err := m.tablePrintTrend(w, prefix, indent, 1); err != nil {
			return err
		}
	}

	if m.Seasonal != nil {
		if _, err := fmt.Fprintf(w, "%s%sSeasonality: period %d\n", prefix, util.IndentExpand(indent, 1), m.Seasonal.Period); err != nil {
			return err
		}
		if m.Seasonal.Period > 1 {
			tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
			if _, err := fmt.Fprintf(tbl, "%s%sPhase\tMean\t\n", prefix, util.IndentExpand(indent, 2)); err != nil {
				return err
			}
			for i, v := range m.Seasonal.Means {
				if _, err := fmt.Fprintf(tbl, "%s%s%d\t%.3f\t\n", prefix, util.IndentExpand(indent, 2), i, v); err != nil {
					return err
				}
			}
			if err := tbl.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m Model) tablePrintTrend(w io.Writer, prefix, indent string, indentGrowth int) error {
	if _, err := fmt.Fprintf(w, "%s%sTrend: degree %d\n", prefix, util.IndentExpand(indent, indentGrowth), m.Trend.Degree); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, util.IndentExpand(indent, indentGrowth+1), m.Trend.String()); err != nil {
		return err
	}

	if m.Trend.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sRMSE: %.3f    MAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, util.IndentExpand(indent, indentGrowth+1),
			m.Trend.Scores.RMSE,
			m.Trend.Scores.MAPE,
			m.Trend.Scores.MSE,
			m.Trend.Scores.R2,
		); err != nil {
			return err
		}
	}

	if len(m.Trend.Candidates) == 0 {
		return nil
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sDegree\tRMSE\t\n", prefix, util.IndentExpand(indent, indentGrowth+1)); err != nil {
		return err
	}
	for _, c := range m.Trend.Candidates {
		marker := ""
		if c.Degree == m.Trend.Degree {
			marker = "*"
		}
		if _, err := fmt.Fprintf(tbl, "%s%s%d%s\t%.6g\t\n",
			prefix, util.IndentExpand(indent, indentGrowth+1), c.Degree, marker, c.RMSE); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
