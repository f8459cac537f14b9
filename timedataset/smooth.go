package timedataset

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// MovingAverage returns a trailing simple moving average of the dataset. The result has the
// same length as the input with the first window-1 values missing. Any window containing a
// missing value produces a missing value.
func (td *TimeDataset) MovingAverage(window int) (*TimeDataset, error) {
	n := td.Len()
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if window < 1 || window > n {
		return nil, fmt.Errorf("got window of %d for %d samples, %w", window, n, ErrInvalidWindowSize)
	}

	res := make([]float64, n)
	for i := 0; i < window-1; i++ {
		res[i] = math.NaN()
	}
	for i := window - 1; i < n; i++ {
		res[i] = floats.Sum(td.Y[i-window+1:i+1]) / float64(window)
	}
	return td.derive(res), nil
}

// ExponentialSmoothing returns the single exponential smoothing of the dataset where
// s[0] = y[0] and s[t] = alpha*y[t] + (1-alpha)*s[t-1]. Missing inputs carry the previous
// smoothed value forward.
func (td *TimeDataset) ExponentialSmoothing(alpha float64) (*TimeDataset, error) {
	n := td.Len()
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("got alpha of %f, %w", alpha, ErrInvalidAlpha)
	}

	res := make([]float64, n)
	last := math.NaN()
	for i, v := range td.Y {
		switch {
		case math.IsNaN(v):
			res[i] = last
		case math.IsNaN(last):
			res[i] = v
		default:
			res[i] = alpha*v + (1-alpha)*last
		}
		last = res[i]
	}
	return td.derive(res), nil
}

// derive builds a new dataset sharing a copy of the receiver's time points with the
// provided values
func (td *TimeDataset) derive(y []float64) *TimeDataset {
	t := make([]time.Time, len(td.T))
	copy(t, td.T)
	return &TimeDataset{
		T:      t,
		Y:      y,
		Period: td.Period,
	}
}
