package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		err       error
	}{
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"all missing": {
			predicted: []float64{nan},
			actual:    []float64{1},
			err:       ErrNoObservations,
		},
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{RMSE: 0, MSE: 0, MAPE: 0, R2: 1},
		},
		"constant actual": {
			predicted: []float64{1, 1, 2},
			actual:    []float64{1, 1, 1},
			expected:  &Scores{RMSE: math.Sqrt(1.0 / 3.0), MSE: 1.0 / 3.0, MAPE: 1.0 / 3.0, R2: 0},
		},
		"with error and missing": {
			predicted: []float64{1, 2, 5, nan},
			actual:    []float64{1, 4, 5, 100},
			expected:  &Scores{RMSE: math.Sqrt(4.0 / 3.0), MSE: 4.0 / 3.0, MAPE: 0.5 / 3.0, R2: 1 - 4.0/(26.0/3.0)},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected.RMSE, res.RMSE, 1e-9, "rmse")
			assert.InDelta(t, td.expected.MSE, res.MSE, 1e-9, "mse")
			assert.InDelta(t, td.expected.MAPE, res.MAPE, 1e-9, "mape")
			assert.InDelta(t, td.expected.R2, res.R2, 1e-9, "r2")
		})
	}
}

func TestRMSE(t *testing.T) {
	res, err := RMSE([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), res, 1e-12)

	_, err = RMSE([]float64{0}, []float64{3, 4})
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestDetectOutliers(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		y        []float64
		expected []int
	}{
		"empty": {
			y: nil,
		},
		"no outliers": {
			y: []float64{-100, -83, -66, -100, -83, -66},
		},
		"single spike": {
			y:        []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 40},
			expected: []int{19},
		},
		"flat with spike": {
			y:        []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -7},
			expected: []int{20},
		},
		"missing values ignored": {
			y:        []float64{1, 2, nan, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, -40},
			expected: []int{20},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := DetectOutliers(td.y, 0.1, 0.9, 1.0)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestAutocorrelation(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		maxLag   int
		expected []float64
		err      error
	}{
		"all missing": {
			y:      []float64{math.NaN()},
			maxLag: 1,
			err:    ErrNoObservations,
		},
		"constant": {
			y:      []float64{2, 2, 2, 2},
			maxLag: 2,
			err:    ErrZeroVariance,
		},
		"two points": {
			y:        []float64{100, 200},
			maxLag:   1,
			expected: []float64{-0.5},
		},
		"period three": {
			y:        []float64{100, 83, 66, 100, 83, 66},
			maxLag:   3,
			expected: []float64{-0.25, -0.5, 0.5},
		},
		"lag capped by length": {
			y:        []float64{1, 2},
			maxLag:   5,
			expected: []float64{-0.5},
		},
		"missing pair skipped": {
			y:        []float64{1, math.NaN(), 1, 3},
			maxLag:   1,
			expected: []float64{-1.0 / 3.0},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Autocorrelation(td.y, td.maxLag)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, td.expected, res, 1e-12)
		})
	}
}
