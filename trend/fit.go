// Package trend fits a polynomial trend of automatically selected degree to a series indexed by
// sample position
package trend

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	mat_ "github.com/aouyang1/go-decomposer/mat"
	"github.com/aouyang1/go-decomposer/models"
	"github.com/aouyang1/go-decomposer/stats"
	"github.com/aouyang1/go-decomposer/timedataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	DegreeAuto       = 0
	DefaultMaxDegree = 8

	// tieTolerance scaled by 1+max|y| is the RMSE improvement a higher degree must exceed to be
	// selected. A higher degree improving by less is treated as a tie, so the selected degree
	// may sit within this tolerance above the lowest candidate RMSE.
	tieTolerance = 1e-9
)

var ErrInvalidDegree = fmt.Errorf("degree must not be negative, %w", timedataset.ErrInvalidParameter)

// Options configures the degree search of the trend fit
type Options struct {
	// MaxDegree caps the polynomial degree searched. The effective cap is also limited to
	// one less than the number of observed values. 0 uses DefaultMaxDegree.
	MaxDegree int `json:"max_degree"`

	// Degree pins the polynomial degree instead of searching when greater than DegreeAuto
	Degree int `json:"degree"`

	// SingularTolerance is passed to the least squares solver
	SingularTolerance float64 `json:"singular_tolerance"`
}

// NewDefaultOptions searches degrees 1 through 8 selecting the lowest in-sample RMSE
func NewDefaultOptions() *Options {
	return &Options{
		MaxDegree:         DefaultMaxDegree,
		Degree:            DegreeAuto,
		SingularTolerance: models.DefaultSingularTolerance,
	}
}

// Validate runs basic validation on trend options
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.MaxDegree < 0 {
		return nil, fmt.Errorf("max degree of %d, %w", o.MaxDegree, ErrInvalidDegree)
	}
	if o.Degree < 0 {
		return nil, fmt.Errorf("degree of %d, %w", o.Degree, ErrInvalidDegree)
	}
	if o.MaxDegree == 0 {
		o.MaxDegree = DefaultMaxDegree
	}
	if o.SingularTolerance <= 0 {
		o.SingularTolerance = models.DefaultSingularTolerance
	}
	return o, nil
}

// Fit fits a polynomial to y using the sample index as the independent variable. Missing values
// are excluded from the fit. Each candidate degree is solved with QR least squares and the
// degree with the lowest in-sample RMSE is selected where lower degrees win ties.
func Fit(y []float64, opt *Options) (*PolynomialModel, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	x := make([]float64, 0, len(y))
	yObs := make([]float64, 0, len(y))
	for i, v := range y {
		if math.IsNaN(v) {
			continue
		}
		x = append(x, float64(i))
		yObs = append(yObs, v)
	}
	m := len(yObs)
	if m == 0 {
		return nil, fmt.Errorf("no observed values to fit trend, %w", timedataset.ErrEmptySeries)
	}

	scale := math.Max(float64(len(y)-1), 1.0)
	xs := make([]float64, m)
	floats.ScaleTo(xs, 1.0/scale, x)

	degrees := candidateDegrees(opt, m)

	tol := tieTolerance * (1.0 + floats.Norm(yObs, math.Inf(1)))
	best := &PolynomialModel{Degree: -1}
	bestRMSE := math.Inf(1)
	candidates := make([]Candidate, 0, len(degrees))
	for _, d := range degrees {
		coef, err := fitDegree(xs, yObs, d, opt.SingularTolerance)
		if err != nil {
			return nil, fmt.Errorf("unable to fit degree %d, %w", d, err)
		}
		model := &PolynomialModel{
			Degree:     d,
			Scale:      scale,
			ScaledCoef: coef,
		}
		rmse, err := stats.RMSE(model.EvalAt(x), yObs)
		if err != nil {
			return nil, err
		}
		slog.Debug("fit trend candidate", "degree", d, "rmse", rmse)
		candidates = append(candidates, Candidate{Degree: d, RMSE: rmse})

		if best.Degree < 0 || rmse < bestRMSE-tol {
			best = model
			bestRMSE = rmse
		}
	}

	best.Candidates = candidates
	best.Scores, err = stats.NewScores(best.EvalAt(x), yObs)
	if err != nil {
		return nil, fmt.Errorf("unable to score trend fit, %w", err)
	}
	return best, nil
}

// candidateDegrees returns the degrees to search given m observed values
func candidateDegrees(opt *Options, m int) []int {
	maxDegree := min(opt.MaxDegree, m-1)
	if opt.Degree > DegreeAuto {
		if opt.Degree > m-1 {
			slog.Warn("pinned trend degree exceeds observed values, lowering degree",
				"degree", opt.Degree, "observed", m)
		}
		return []int{min(opt.Degree, m-1)}
	}
	if maxDegree < 1 {
		return []int{0}
	}
	degrees := make([]int, 0, maxDegree)
	for d := 1; d <= maxDegree; d++ {
		degrees = append(degrees, d)
	}
	return degrees
}

func fitDegree(x, y []float64, degree int, singularTol float64) ([]float64, error) {
	xMx, err := mat_.Vandermonde(x, degree)
	if err != nil {
		return nil, err
	}
	yMx := mat.NewDense(len(y), 1, y)

	model, err := models.NewOLSRegression(&models.OLSOptions{
		FitIntercept:      false,
		SingularTolerance: singularTol,
	})
	if err != nil {
		return nil, err
	}
	if err := model.Fit(xMx, yMx); err != nil {
		if errors.Is(err, models.ErrNumericalInstability) {
			slog.Warn("trend least squares is ill-conditioned", "degree", degree, "error", err.Error())
		}
		return nil, err
	}
	return model.Coef(), nil
}
