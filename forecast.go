package decomposer

import (
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-decomposer/timedataset"
	"gonum.org/v1/gonum/floats"
)

// Forecast extrapolates the trend polynomial and seasonal profile over the h samples following
// the training data. Time points are spaced by the most common training interval.
func (d *Decomposer) Forecast(h int) (*ForecastResults, error) {
	if d.trendModel == nil {
		return nil, ErrNotFit
	}
	if h < 1 {
		return nil, fmt.Errorf("forecast horizon of %d, %w", h, ErrInvalidParameter)
	}
	if d.interval <= 0 {
		return nil, fmt.Errorf("need at least 2 training samples, %w", ErrCannotInferInterval)
	}
	if h > d.numSamples {
		slog.Warn("forecast horizon exceeds training length, polynomial extrapolation may diverge",
			"horizon", h, "training_samples", d.numSamples)
	}

	x := make([]float64, h)
	for i := range x {
		x[i] = float64(d.numSamples + i)
	}
	trendVals := d.trendModel.EvalAt(x)
	seasonVals := d.profile.ValuesFrom(d.numSamples, h)

	forecastVals := make([]float64, h)
	floats.AddTo(forecastVals, trendVals, seasonVals)

	t := timedataset.TimeSlice{d.trainEnd}.Extend(h, d.interval)
	return &ForecastResults{
		T:        t,
		Forecast: forecastVals,
		Trend:    trendVals,
		Seasonal: seasonVals,
	}, nil
}
