package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PeriodAuto indicates that the seasonal period of a dataset is unknown and should be
// detected from the values.
const PeriodAuto = 0

var (
	ErrEmptySeries        = errors.New("series has too few observations")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrNonMonotonic       = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")

	ErrInvalidWindowSize = fmt.Errorf("window size out of range, %w", ErrInvalidParameter)
	ErrInvalidAlpha      = fmt.Errorf("smoothing factor must be in (0, 1], %w", ErrInvalidParameter)
	ErrInvalidPeriod     = fmt.Errorf("period must be positive or auto, %w", ErrInvalidParameter)
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length. Missing values are stored as NaN. Period is the
// known seasonal period in samples or PeriodAuto.
type TimeDataset struct {
	T      []time.Time `json:"time"`
	Y      []float64   `json:"values"`
	Period int         `json:"period,omitempty"`
}

// New returns an instance of a TimeDataset given a time and value slice. The inputs
// are copied.
func New(t []time.Time, y []float64) (*TimeDataset, error) {
	return NewWithPeriod(t, y, PeriodAuto)
}

// NewWithPeriod returns a TimeDataset with an explicit seasonal period.
func NewWithPeriod(t []time.Time, y []float64, period int) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrEmptySeries
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}
	if period < 0 {
		return nil, fmt.Errorf("got period %d, %w", period, ErrInvalidPeriod)
	}

	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T:      tSeries,
		Y:      ySeries,
		Period: period,
	}

	return td, nil
}

// Len returns the number of samples in the dataset
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

// Copy returns a deep copy of the dataset
func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.Y))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T:      tSeries,
		Y:      ySeries,
		Period: td.Period,
	}
}

// WithPeriod returns a copy of the dataset carrying the given period
func (td *TimeDataset) WithPeriod(period int) (*TimeDataset, error) {
	if period < 0 {
		return nil, fmt.Errorf("got period %d, %w", period, ErrInvalidPeriod)
	}
	res := td.Copy()
	res.Period = period
	return res, nil
}

// DropNan returns a new dataset with all missing observations removed
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}
	tSeries := make([]time.Time, 0, len(td.T))
	ySeries := make([]float64, 0, len(td.Y))
	for i := 0; i < len(td.Y); i++ {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		tSeries = append(tSeries, td.T[i])
		ySeries = append(ySeries, td.Y[i])
	}
	return &TimeDataset{
		T:      tSeries,
		Y:      ySeries,
		Period: td.Period,
	}
}

// Observed returns the number of non-missing values
func (td *TimeDataset) Observed() int {
	var cnt int
	for _, v := range td.Y {
		if !math.IsNaN(v) {
			cnt++
		}
	}
	return cnt
}

// Mean returns the arithmetic mean of the observed values. NaN if nothing is observed.
func (td *TimeDataset) Mean() float64 {
	obs := td.DropNan()
	if len(obs.Y) == 0 {
		return math.NaN()
	}
	return stat.Mean(obs.Y, nil)
}

// Variance returns the unbiased sample variance of the observed values. NaN with
// fewer than two observations.
func (td *TimeDataset) Variance() float64 {
	obs := td.DropNan()
	if len(obs.Y) < 2 {
		return math.NaN()
	}
	return stat.Variance(obs.Y, nil)
}

// TimeSlice returns the timestamps of the dataset as a TimeSlice
func (td *TimeDataset) TimeSlice() TimeSlice {
	return TimeSlice(td.T)
}
