package decomposer

import (
	"fmt"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/aouyang1/go-decomposer/trend"
)

// TrendResolution selects the sample positions the reported trend is evaluated at
type TrendResolution string

const (
	// ResolutionFine evaluates the trend at tenths of a sample interval producing 10n-9 values
	ResolutionFine TrendResolution = "fine"

	// ResolutionCoarse evaluates the trend at each input sample
	ResolutionCoarse TrendResolution = "coarse"
)

// OutlierOptions configures the Tukey fences applied to the residual when detecting anomalies
type OutlierOptions struct {
	UpperPercentile float64 `json:"upper_percentile"`
	LowerPercentile float64 `json:"lower_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

// NewOutlierOptions generates outlier options with fences at the 10th and 90th percentile
func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		UpperPercentile: 0.9,
		LowerPercentile: 0.1,
		TukeyFactor:     1.0,
	}
}

// Validate checks that the percentiles are ordered within [0, 1] and the factor is not negative
func (o *OutlierOptions) Validate() (*OutlierOptions, error) {
	if o == nil {
		return NewOutlierOptions(), nil
	}
	if o.LowerPercentile < 0 || o.UpperPercentile > 1 || o.LowerPercentile >= o.UpperPercentile {
		return nil, fmt.Errorf(
			"percentiles must satisfy 0 <= lower < upper <= 1, got %.3f and %.3f, %w",
			o.LowerPercentile, o.UpperPercentile, timedataset.ErrInvalidParameter,
		)
	}
	if o.TukeyFactor < 0 {
		return nil, fmt.Errorf("tukey factor of %.3f, %w", o.TukeyFactor, timedataset.ErrInvalidParameter)
	}
	return o, nil
}

// Options configures the decomposition
type Options struct {
	TrendOptions   *trend.Options  `json:"trend_options"`
	Resolution     TrendResolution `json:"resolution"`
	OutlierOptions *OutlierOptions `json:"outlier_options"`
}

// NewDefaultOptions searches trend degrees 1 through 8 and reports the fine resolution trend
func NewDefaultOptions() *Options {
	return &Options{
		TrendOptions:   trend.NewDefaultOptions(),
		Resolution:     ResolutionFine,
		OutlierOptions: NewOutlierOptions(),
	}
}

// Validate fills in defaults for unset options and rejects invalid values
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}

	var err error
	if o.TrendOptions, err = o.TrendOptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trend options, %w", err)
	}

	switch o.Resolution {
	case "":
		o.Resolution = ResolutionFine
	case ResolutionFine, ResolutionCoarse:
	default:
		return nil, fmt.Errorf("unknown trend resolution %q, %w", o.Resolution, timedataset.ErrInvalidParameter)
	}

	if o.OutlierOptions, err = o.OutlierOptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid outlier options, %w", err)
	}
	return o, nil
}
