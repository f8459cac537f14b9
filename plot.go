package decomposer

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// PlotTimeLayout formats the time axis of rendered charts
const PlotTimeLayout = "2006-01-02 15:04:05"

// missingPoint is rendered by echarts as a gap in the line
const missingPoint = "-"

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. Each
// series in y must have the same length as the input time slice. Missing values break the line.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "value"}),
	)

	xAxis := make([]string, len(t))
	for i, ts := range t {
		xAxis[i] = ts.Format(PlotTimeLayout)
	}
	line = line.SetXAxis(xAxis)

	for i, series := range seriesName {
		if i >= len(y) {
			break
		}
		line = line.AddSeries(series, lineData(y[i]))
	}
	return line
}

func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data = append(data, opts.LineData{Value: missingPoint})
			continue
		}
		data = append(data, opts.LineData{Value: v})
	}
	return data
}

// RenderSeries writes an html page with a line chart of td
func RenderSeries(w io.Writer, title string, td *timedataset.TimeDataset) error {
	if td.Len() == 0 {
		return ErrEmptySeries
	}
	page := components.NewPage()
	page.AddCharts(
		LineTSeries(title, []string{"Values"}, td.T, [][]float64{td.Y}),
	)
	return page.Render(w)
}

// PlotSeries renders td as a line chart to an html file at path
func PlotSeries(path, title string, td *timedataset.TimeDataset) error {
	return renderToFile(path, func(w io.Writer) error {
		return RenderSeries(w, title, td)
	})
}

// RenderFit writes an html page showing the training data against the fit trend and seasonal
// components followed by the residual
func (d *Decomposer) RenderFit(w io.Writer) error {
	res := d.Results()
	if res == nil {
		return ErrNotFit
	}
	td := d.TrainingData()

	page := components.NewPage()
	page.AddCharts(
		LineTSeries(
			"Decomposition Fit",
			[]string{"Actual", "Trend", "Trend + Seasonality"},
			td.T,
			[][]float64{
				td.Y,
				res.TrendCoarse.Y,
				floats.AddTo(make([]float64, td.Len()), res.TrendCoarse.Y, res.Seasonal.Y),
			},
		),
		LineTSeries(
			fmt.Sprintf("Trend (%s, degree %d)", d.opt.Resolution, res.Model.Degree),
			[]string{"Trend"},
			res.Trend.T,
			[][]float64{res.Trend.Y},
		),
		LineTSeries(
			fmt.Sprintf("Seasonality (period %d)", res.Period),
			[]string{"Seasonality"},
			td.T,
			[][]float64{res.Seasonal.Y},
		),
		LineTSeries(
			"Residual",
			[]string{"Residual"},
			td.T,
			[][]float64{res.Residual.Y},
		),
	)
	return page.Render(w)
}

// PlotFit uses the Apache Echarts library to generate an html file showing the resulting fit,
// model components, and fit residual
func (d *Decomposer) PlotFit(path string) error {
	return renderToFile(path, d.RenderFit)
}

func renderToFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
