package trend

import (
	"fmt"
	"math"
	"strings"

	"github.com/aouyang1/go-decomposer/stats"
)

// FineSteps is the number of evaluation points per unit sample interval used by EvalFine
const FineSteps = 10

// PolynomialModel is a fitted polynomial f(x) = c0 + c1*x + ... + cd*x^d over sample positions.
// Coefficients are stored against x/Scale to keep the fit well conditioned; Coefficients
// returns them against the raw sample position.
type PolynomialModel struct {
	Degree     int           `json:"degree"`
	Scale      float64       `json:"scale"`
	ScaledCoef []float64     `json:"scaled_coefficients"`
	Scores     *stats.Scores `json:"scores,omitempty"`
	Candidates []Candidate   `json:"candidates,omitempty"`
}

// Candidate records the in-sample error of one degree considered during fitting
type Candidate struct {
	Degree int     `json:"degree"`
	RMSE   float64 `json:"rmse"`
}

// NewPolynomialModel creates a model from coefficients against raw sample positions
func NewPolynomialModel(coef []float64) *PolynomialModel {
	c := make([]float64, len(coef))
	copy(c, coef)
	return &PolynomialModel{
		Degree:     len(c) - 1,
		Scale:      1.0,
		ScaledCoef: c,
	}
}

// Eval computes the polynomial at sample position x
func (p *PolynomialModel) Eval(x float64) float64 {
	scale := p.Scale
	if scale == 0 {
		scale = 1.0
	}
	xs := x / scale

	var res float64
	for i := len(p.ScaledCoef) - 1; i >= 0; i-- {
		res = res*xs + p.ScaledCoef[i]
	}
	return res
}

// EvalAt computes the polynomial at each of the provided sample positions
func (p *PolynomialModel) EvalAt(x []float64) []float64 {
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = p.Eval(xi)
	}
	return res
}

// EvalCoarse evaluates the polynomial at the integer sample positions 0..n-1
func (p *PolynomialModel) EvalCoarse(n int) []float64 {
	return p.EvalAt(CoarsePositions(n))
}

// EvalFine evaluates the polynomial at positions 0, 0.1, 0.2, ... n-1 producing 10n-9 values.
// The output does not align with the original samples.
func (p *PolynomialModel) EvalFine(n int) []float64 {
	return p.EvalAt(FinePositions(n))
}

// RMSE returns the in-sample root mean squared error of the fit or NaN if the model was not fit
func (p *PolynomialModel) RMSE() float64 {
	if p.Scores == nil {
		return math.NaN()
	}
	return p.Scores.RMSE
}

// Coefficients returns c0..cd against the raw sample position
func (p *PolynomialModel) Coefficients() []float64 {
	scale := p.Scale
	if scale == 0 {
		scale = 1.0
	}
	c := make([]float64, len(p.ScaledCoef))
	div := 1.0
	for i, sc := range p.ScaledCoef {
		c[i] = sc / div
		div *= scale
	}
	return c
}

// String returns the model equation represented as y ~ c0 + c1*x + c2*x^2 ...
func (p *PolynomialModel) String() string {
	var sb strings.Builder
	sb.WriteString("y ~ ")
	for i, c := range p.Coefficients() {
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%.6g", c)
		case 1:
			fmt.Fprintf(&sb, "%+.6g*x", c)
		default:
			fmt.Fprintf(&sb, "%+.6g*x^%d", c, i)
		}
	}
	return sb.String()
}

// CoarsePositions returns 0..n-1
func CoarsePositions(n int) []float64 {
	if n < 0 {
		n = 0
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

// FinePositions returns k/FineSteps for k in 0..FineSteps*(n-1)
func FinePositions(n int) []float64 {
	if n < 1 {
		return []float64{}
	}
	cnt := FineSteps*(n-1) + 1
	x := make([]float64, cnt)
	for k := range x {
		x[k] = float64(k) / FineSteps
	}
	return x
}
