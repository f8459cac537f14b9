// floatsunrolled holds loop unrolled vector kernels used on the autocorrelation hot path. It is
// inspired by the SIMD blog post https://github.com/camdencheek/simd_blog/blob/main/main.go
package floatsunrolled

import (
	"errors"
	"math"
)

const UnrollBatch = 4

var (
	ErrSliceLengthMismatch       = errors.New("slices must have equal lengths")
	ErrOutputSliceLengthMismatch = errors.New("output slice length not the same as input")
	ErrLagOutOfRange             = errors.New("lag must be in [0, len)")
)

// Dot computes the dot product of a and b. Slices of any length are accepted, the tail that does
// not fill a batch is summed separately.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}

	var sum float64
	n := len(a) - len(a)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		bTmp := b[i : i+UnrollBatch : i+UnrollBatch]
		s0 := aTmp[0] * bTmp[0]
		s1 := aTmp[1] * bTmp[1]
		s2 := aTmp[2] * bTmp[2]
		s3 := aTmp[3] * bTmp[3]
		sum += s0 + s1 + s2 + s3
	}
	for i := n; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// LagDot computes sum(a[i] * a[i+lag]) over every valid i
func LagDot(a []float64, lag int) float64 {
	if lag < 0 || (lag >= len(a) && len(a) > 0) {
		panic(ErrLagOutOfRange)
	}
	return Dot(a[:len(a)-lag], a[lag:])
}

// CenterTo stores s - c into dst with missing values of s set to 0 so they drop out of any
// following dot product. A nil dst is allocated.
func CenterTo(dst, s []float64, c float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(s))
	} else if len(dst) != len(s) {
		panic(ErrOutputSliceLengthMismatch)
	}

	n := len(s) - len(s)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		dstTmp := dst[i : i+UnrollBatch : i+UnrollBatch]
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		dstTmp[0] = sTmp[0] - c
		dstTmp[1] = sTmp[1] - c
		dstTmp[2] = sTmp[2] - c
		dstTmp[3] = sTmp[3] - c
	}
	for i := n; i < len(s); i++ {
		dst[i] = s[i] - c
	}
	for i, v := range dst {
		if math.IsNaN(v) {
			dst[i] = 0
		}
	}
	return dst
}
