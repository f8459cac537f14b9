package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch    = errors.New("column size mismatch")
	ErrNegativeDegree = errors.New("negative polynomial degree")
)

func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// Vandermonde returns the len(x) by degree+1 matrix where element (i, j) is x[i]^j
func Vandermonde(x []float64, degree int) (*mat.Dense, error) {
	if degree < 0 {
		return nil, fmt.Errorf("got degree %d, %w", degree, ErrNegativeDegree)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no sample positions, %w", mat.ErrZeroLength)
	}
	m := len(x)
	n := degree + 1

	data := make([]float64, m*n)
	for i, xi := range x {
		row := data[i*n : (i+1)*n]
		row[0] = 1.0
		for j := 1; j < n; j++ {
			row[j] = row[j-1] * xi
		}
	}
	return mat.NewDense(m, n, data), nil
}
