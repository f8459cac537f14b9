// Package decomposer splits a time series into a polynomial trend, a periodic seasonal profile
// and the remaining residual. The fit components can be inspected, serialized, used to flag
// anomalous samples and extrapolated past the end of the training data.
package decomposer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aouyang1/go-decomposer/models"
	"github.com/aouyang1/go-decomposer/seasonal"
	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/aouyang1/go-decomposer/trend"
)

var (
	ErrEmptySeries          = timedataset.ErrEmptySeries
	ErrInvalidParameter     = timedataset.ErrInvalidParameter
	ErrNumericalInstability = models.ErrNumericalInstability
	ErrDatasetLenMismatch   = timedataset.ErrDatasetLenMismatch
	ErrNonMonotonic         = timedataset.ErrNonMonotonic

	ErrNotFit              = errors.New("decomposer has not been fit")
	ErrNoOptionsInModel    = errors.New("no options set in model")
	ErrNoTrendInModel      = errors.New("no trend set in model")
	ErrCannotInferInterval = errors.New("cannot infer interval from training data time")
)

// Decomposer fits the trend and seasonal components of a series
type Decomposer struct {
	opt *Options

	trendModel *trend.PolynomialModel
	profile    *seasonal.Profile

	trainStart time.Time
	trainEnd   time.Time
	interval   time.Duration
	numSamples int

	fitTrainingData *timedataset.TimeDataset
	fitResults      *Results
}

// New creates a new instance of a Decomposer using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Decomposer, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Decomposer{opt: opt}, nil
}

// NewFromModel creates a Decomposer from a model generated by a previous call to Model(). The
// result can forecast without training data.
func NewFromModel(model Model) (*Decomposer, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if model.Trend == nil {
		return nil, ErrNoTrendInModel
	}
	opt, err := model.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid options in model, %w", err)
	}
	profile := model.Seasonal
	if profile == nil {
		profile, err = seasonal.NewProfile(nil, 1)
		if err != nil {
			return nil, err
		}
	}
	return &Decomposer{
		opt:        opt,
		trendModel: model.Trend,
		profile:    profile,
		trainStart: model.TrainStartTime,
		trainEnd:   model.TrainEndTime,
		interval:   model.Interval,
		numSamples: model.NumSamples,
	}, nil
}

// Decompose fits a new Decomposer to td and returns the decomposition
func Decompose(td *timedataset.TimeDataset, opt *Options) (*Results, error) {
	d, err := New(opt)
	if err != nil {
		return nil, err
	}
	if err := d.Fit(td); err != nil {
		return nil, err
	}
	return d.Results(), nil
}

// Fit decomposes td into trend, seasonal and residual components. The trend is fit against the
// sample index. The seasonal profile averages the raw values per phase so trend variation is
// also present in the seasonal component. Nothing is retained on failure.
func (d *Decomposer) Fit(td *timedataset.TimeDataset) error {
	n := td.Len()
	if n == 0 {
		return ErrEmptySeries
	}
	td, err := timedataset.NewWithPeriod(td.T, td.Y, td.Period)
	if err != nil {
		return fmt.Errorf("invalid training data, %w", err)
	}

	trendModel, err := trend.Fit(td.Y, d.opt.TrendOptions)
	if err != nil {
		return fmt.Errorf("unable to fit trend, %w", err)
	}
	coarse := trendModel.EvalCoarse(n)

	period, err := d.resolvePeriod(td)
	if err != nil {
		return err
	}
	profile, err := seasonal.NewProfile(td.Y, period)
	if err != nil {
		return fmt.Errorf("unable to compute seasonal profile, %w", err)
	}
	season := profile.Values(n)

	residual := make([]float64, n)
	for i, v := range td.Y {
		residual[i] = v - coarse[i] - season[i]
	}

	var interval time.Duration
	if n > 1 {
		if interval, err = td.TimeSlice().EstimateFreq(); err != nil {
			slog.Warn("unable to estimate sampling interval", "error", err.Error())
		}
	}

	trendCoarse := &timedataset.TimeDataset{T: td.T, Y: coarse, Period: td.Period}
	res := &Results{
		Trend:       trendCoarse,
		TrendCoarse: trendCoarse,
		Seasonal:    &timedataset.TimeDataset{T: td.T, Y: season, Period: td.Period},
		Residual:    &timedataset.TimeDataset{T: td.T, Y: residual, Period: td.Period},
		Period:      period,
		Model:       trendModel,
	}
	if d.opt.Resolution == ResolutionFine {
		res.Trend = &timedataset.TimeDataset{
			T:      td.TimeSlice().Subdivide(trend.FineSteps),
			Y:      trendModel.EvalFine(n),
			Period: td.Period,
		}
	}

	d.trendModel = trendModel
	d.profile = profile
	d.trainStart = td.T[0]
	d.trainEnd = td.T[n-1]
	d.interval = interval
	d.numSamples = n
	d.fitTrainingData = td
	d.fitResults = res
	return nil
}

func (d *Decomposer) resolvePeriod(td *timedataset.TimeDataset) (int, error) {
	if td.Period == timedataset.PeriodAuto && td.Observed() < 2 {
		slog.Warn("too few observations to detect period, using period of 1", "observed", td.Observed())
		return 1, nil
	}
	period, err := seasonal.ResolvePeriod(td.Y, td.Period)
	if err != nil {
		return 0, fmt.Errorf("unable to resolve period, %w", err)
	}
	return period, nil
}

// Results returns the decomposition of the training data or nil if not fit
func (d *Decomposer) Results() *Results {
	return d.fitResults
}

// TrendComponent returns the trend evaluated at each training sample
func (d *Decomposer) TrendComponent() []float64 {
	if d.fitResults == nil {
		return nil
	}
	return d.fitResults.TrendCoarse.Y
}

// SeasonalityComponent returns the seasonal profile tiled over the training samples
func (d *Decomposer) SeasonalityComponent() []float64 {
	if d.fitResults == nil {
		return nil
	}
	return d.fitResults.Seasonal.Y
}

// Residuals returns the difference between the training data and the trend plus seasonal
// components
func (d *Decomposer) Residuals() []float64 {
	if d.fitResults == nil {
		return nil
	}
	return d.fitResults.Residual.Y
}

// Period returns the resolved seasonal period. 0 if not fit.
func (d *Decomposer) Period() int {
	if d.profile == nil {
		return 0
	}
	return d.profile.Period
}

// Model generates a serializeable representation of the options, trend polynomial and seasonal
// profile. This can be used to initialize a new Decomposer for forecasting without retraining.
func (d *Decomposer) Model() (Model, error) {
	if d.trendModel == nil {
		return Model{}, ErrNotFit
	}
	return Model{
		TrainStartTime: d.trainStart,
		TrainEndTime:   d.trainEnd,
		Interval:       d.interval,
		NumSamples:     d.numSamples,
		Options:        d.opt,
		Trend:          d.trendModel,
		Seasonal:       d.profile,
	}, nil
}

// ModelEq returns a string representation of the fit trend represented as
// y ~ c0+c1*x+c2*x^2 ...
func (d *Decomposer) ModelEq() (string, error) {
	if d.trendModel == nil {
		return "", ErrNotFit
	}
	return d.trendModel.String(), nil
}

// TrainingData returns the training data used to fit the current model
func (d *Decomposer) TrainingData() *timedataset.TimeDataset {
	return d.fitTrainingData
}
