package timedataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonalDataset(t *testing.T) *TimeDataset {
	t.Helper()
	nowFunc := func() time.Time {
		return time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC)
	}
	ds, err := New(GenerateT(6, 24*time.Hour, nowFunc), []float64{100, 83, 66, 100, 83, 66})
	require.NoError(t, err)
	return ds
}

func TestMovingAverage(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		y        []float64
		window   int
		expected []float64
		err      error
	}{
		"window too small": {
			y:      []float64{1, 2, 3},
			window: 0,
			err:    ErrInvalidWindowSize,
		},
		"window too large": {
			y:      []float64{1, 2, 3},
			window: 4,
			err:    ErrInvalidParameter,
		},
		"window of one": {
			y:        []float64{1, 2, 3},
			window:   1,
			expected: []float64{1, 2, 3},
		},
		"full window": {
			y:        []float64{1, 2, 3},
			window:   3,
			expected: []float64{nan, nan, 2},
		},
		"seasonal": {
			y:        []float64{100, 83, 66, 100, 83, 66},
			window:   3,
			expected: []float64{nan, nan, 83, 83, 83, 83},
		},
		"missing input": {
			y:        []float64{1, nan, 3, 5, 7},
			window:   2,
			expected: []float64{nan, nan, nan, 4, 6},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds := &TimeDataset{
				T: GenerateT(len(td.y), time.Hour, time.Now),
				Y: td.y,
			}
			res, err := ds.MovingAverage(td.window)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ds.T, res.T)
			assertFloatSliceEqualWithNaN(t, td.expected, res.Y, 1e-9)
		})
	}
}

func TestMovingAverageDoesNotMutate(t *testing.T) {
	ds := seasonalDataset(t)
	orig := ds.Copy()

	res, err := ds.MovingAverage(3)
	require.NoError(t, err)
	res.T[0] = time.Time{}
	res.Y[3] = 0

	assert.Equal(t, orig, ds)
}

func TestExponentialSmoothing(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		y        []float64
		alpha    float64
		expected []float64
		err      error
	}{
		"zero alpha": {
			y:     []float64{1},
			alpha: 0,
			err:   ErrInvalidAlpha,
		},
		"alpha above one": {
			y:     []float64{1},
			alpha: 1.01,
			err:   ErrInvalidParameter,
		},
		"nan alpha": {
			y:     []float64{1},
			alpha: nan,
			err:   ErrInvalidParameter,
		},
		"empty": {
			alpha: 0.5,
			err:   ErrEmptySeries,
		},
		"alpha of one": {
			y:        []float64{3, 1, 2},
			alpha:    1,
			expected: []float64{3, 1, 2},
		},
		"seasonal": {
			y:        []float64{100, 83, 66, 100, 83, 66},
			alpha:    0.3,
			expected: []float64{100.0, 94.9, 86.23, 90.361, 88.1527, 81.50689},
		},
		"missing input": {
			y:        []float64{nan, 10, nan, 20},
			alpha:    0.5,
			expected: []float64{nan, 10, 10, 15},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds := &TimeDataset{
				T: GenerateT(len(td.y), time.Hour, time.Now),
				Y: td.y,
			}
			res, err := ds.ExponentialSmoothing(td.alpha)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ds.T, res.T)
			assertFloatSliceEqualWithNaN(t, td.expected, res.Y, 1e-9)
		})
	}
}

func TestExponentialSmoothingRecurrence(t *testing.T) {
	y := GenerateLineY(50, 3, 0.5).Add(GenerateNoise(50, 2.0, 11))
	ds := &TimeDataset{
		T: GenerateT(len(y), time.Minute, time.Now),
		Y: y,
	}
	alpha := 0.27
	res, err := ds.ExponentialSmoothing(alpha)
	require.NoError(t, err)

	assert.Equal(t, y[0], res.Y[0])
	for i := 1; i < len(y); i++ {
		assert.InDelta(t, alpha*y[i]+(1-alpha)*res.Y[i-1], res.Y[i], 1e-12)
	}
}
