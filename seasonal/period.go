// Package seasonal detects the dominant period of a series through autocorrelation and
// summarizes each phase of that period by its mean
package seasonal

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-decomposer/stats"
	"github.com/aouyang1/go-decomposer/timedataset"
	"gonum.org/v1/gonum/floats"
)

// DetectPeriod returns the lag in 1..n/2 with the highest autocorrelation. The first lag reaching
// the maximum wins. A constant series has no periodic structure and returns a period of 1.
func DetectPeriod(y []float64) (int, error) {
	var observed int
	for _, v := range y {
		if !math.IsNaN(v) {
			observed++
		}
	}
	if observed < 2 {
		return 0, fmt.Errorf("need at least 2 observed values to detect period, got %d, %w",
			observed, timedataset.ErrEmptySeries)
	}

	acf, err := stats.Autocorrelation(y, len(y)/2)
	if err != nil {
		if errors.Is(err, stats.ErrZeroVariance) {
			slog.Warn("series has zero variance, falling back to period of 1")
			return 1, nil
		}
		return 0, err
	}
	if len(acf) == 0 {
		return 1, nil
	}
	return floats.MaxIdx(acf) + 1, nil
}

// ResolvePeriod returns period when positive and detects it from y for timedataset.PeriodAuto
func ResolvePeriod(y []float64, period int) (int, error) {
	switch {
	case period < 0:
		return 0, fmt.Errorf("got period %d, %w", period, timedataset.ErrInvalidPeriod)
	case period > timedataset.PeriodAuto:
		return period, nil
	}
	return DetectPeriod(y)
}
