package trend

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	raw := NewPolynomialModel([]float64{1, -2, 0.5})
	scaled := &PolynomialModel{
		Degree:     2,
		Scale:      4,
		ScaledCoef: []float64{1, -8, 8},
	}

	for _, x := range []float64{0, 1, 2.5, 10} {
		expected := 1 - 2*x + 0.5*x*x
		assert.InDelta(t, expected, raw.Eval(x), 1e-12)
		assert.InDelta(t, expected, scaled.Eval(x), 1e-12)
	}
	assert.InDeltaSlice(t, []float64{1, -2, 0.5}, scaled.Coefficients(), 1e-12)
}

func TestPositions(t *testing.T) {
	assert.Equal(t, []float64{}, CoarsePositions(0))
	assert.Equal(t, []float64{0, 1, 2}, CoarsePositions(3))

	assert.Equal(t, []float64{}, FinePositions(0))
	assert.Equal(t, []float64{0}, FinePositions(1))

	fine := FinePositions(6)
	require.Len(t, fine, 10*6-9)
	assert.Equal(t, 0.0, fine[0])
	assert.InDelta(t, 0.1, fine[1], 1e-15)
	assert.Equal(t, 5.0, fine[len(fine)-1])
}

func TestEvalFine(t *testing.T) {
	model, err := Fit([]float64{100, 200}, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t,
		[]float64{100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200},
		model.EvalFine(2), 1e-9,
	)

	model, err = Fit([]float64{100, 83, 66, 100, 83, 66}, nil)
	require.NoError(t, err)
	fine := model.EvalFine(6)
	require.Len(t, fine, 51)

	expected := map[int]float64{
		0:  100.0,
		1:  107.846588,
		2:  112.002816,
		5:  109.03125,
		10: 83.0,
		16: 62.818688,
		33: 103.615084,
		50: 66.0,
	}
	for idx, val := range expected {
		assert.InDelta(t, val, fine[idx], 1e-6, "fine index %d", idx)
	}
}

func TestRMSE(t *testing.T) {
	assert.True(t, math.IsNaN(NewPolynomialModel([]float64{1}).RMSE()))

	model, err := Fit([]float64{1, 2, 2, 1}, &Options{MaxDegree: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, model.RMSE(), 1e-12)
}

func TestString(t *testing.T) {
	model := NewPolynomialModel([]float64{1.5, -2, 0.25})
	assert.Equal(t, "y ~ 1.5-2*x+0.25*x^2", model.String())
}

func TestPolynomialModelJSON(t *testing.T) {
	model, err := Fit([]float64{100, 83, 66, 100, 83, 66}, nil)
	require.NoError(t, err)

	out, err := json.Marshal(model)
	require.NoError(t, err)

	var loaded PolynomialModel
	require.NoError(t, json.Unmarshal(out, &loaded))
	assert.InDeltaSlice(t, model.EvalFine(6), loaded.EvalFine(6), 1e-9)
}
