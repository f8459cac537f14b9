package decomposer

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/aouyang1/go-decomposer/trend"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTrip(t *testing.T) {
	d, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, d.Fit(dailyDataset(t, []float64{100, 83, 66, 100, 83, 66}, timedataset.PeriodAuto)))

	m, err := d.Model()
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	var loaded Model
	require.NoError(t, json.Unmarshal(out, &loaded))
	assert.True(t, m.TrainEndTime.Equal(loaded.TrainEndTime))
	assert.Equal(t, m.Interval, loaded.Interval)
	assert.Equal(t, m.NumSamples, loaded.NumSamples)
	assert.Equal(t, m.Options.Resolution, loaded.Options.Resolution)

	restored, err := NewFromModel(loaded)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Period())

	expected, err := d.Forecast(6)
	require.NoError(t, err)
	actual, err := restored.Forecast(6)
	require.NoError(t, err)

	require.Len(t, actual.T, len(expected.T))
	for i := range expected.T {
		assert.True(t, expected.T[i].Equal(actual.T[i]), "index %d", i)
	}
	assert.InDeltaSlice(t, expected.Forecast, actual.Forecast, 1e-9)

	eq, err := restored.ModelEq()
	require.NoError(t, err)
	expectedEq, err := d.ModelEq()
	require.NoError(t, err)
	assert.Equal(t, expectedEq, eq)
}

func TestNewFromModel(t *testing.T) {
	testData := map[string]struct {
		m   Model
		err error
	}{
		"no options": {
			m:   Model{Trend: trend.NewPolynomialModel([]float64{1})},
			err: ErrNoOptionsInModel,
		},
		"no trend": {
			m:   Model{Options: NewDefaultOptions()},
			err: ErrNoTrendInModel,
		},
		"no seasonal profile": {
			m: Model{
				Options:    NewDefaultOptions(),
				Trend:      trend.NewPolynomialModel([]float64{1, 2}),
				Interval:   testStart.Sub(testStart.AddDate(0, 0, -1)),
				NumSamples: 3,
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			d, err := NewFromModel(td.m)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, d.Period())

			res, err := d.Forecast(2)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{7, 9}, res.Forecast, 1e-12)
		})
	}
}

func TestModelTablePrint(t *testing.T) {
	d, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, d.Fit(dailyDataset(t, []float64{100, 83, 66, 100, 83, 66}, timedataset.PeriodAuto)))

	m, err := d.Model()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.TablePrint(&buf, "", "  "))

	out := buf.String()
	assert.Contains(t, out, "Decomposition:\n")
	assert.Contains(t, out, "  Training: 2023-01-01T00:00:00Z to 2023-01-06T00:00:00Z, 6 samples every 24h0m0s\n")
	assert.Contains(t, out, "  Trend: degree 5\n")
	assert.Contains(t, out, "    y ~ 100+99.45*x-223.125*x^2+136*x^3-31.875*x^4+2.55*x^5\n")
	assert.Contains(t, out, "  Seasonality: period 3\n")
	assert.Contains(t, out, "Phase")
	assert.Contains(t, out, "83.000")

	var empty bytes.Buffer
	require.NoError(t, Model{}.TablePrint(&empty, "# ", "\t"))
	assert.Equal(t, "# Decomposition:\n# \tTraining: 0001-01-01T00:00:00Z to 0001-01-01T00:00:00Z, 0 samples every 0s\n", empty.String())
}
