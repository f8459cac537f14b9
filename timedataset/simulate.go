package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateT creates n evenly spaced time points ending one interval before the minute
// truncated value of nowFunc
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// Series is a builder for synthetic values indexed by sample position
type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// SetMissing marks the provided sample positions as missing
func (s Series) SetMissing(idxs ...int) Series {
	for _, idx := range idxs {
		if idx >= 0 && idx < len(s) {
			s[idx] = math.NaN()
		}
	}
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLineY creates intercept + slope*i for i in 0..n-1
func GenerateLineY(n int, intercept, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, intercept+slope*float64(i))
	}
	return Series(y)
}

// GenerateBlockY repeats block until n values are produced
func GenerateBlockY(n int, block []float64) Series {
	y := make([]float64, 0, n)
	if len(block) == 0 {
		return Series(y)
	}
	for i := 0; i < n; i++ {
		y = append(y, block[i%len(block)])
	}
	return Series(y)
}

// GenerateWaveY creates a sine wave with the given amplitude and period in samples
func GenerateWaveY(n int, amp, period, offset float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi/period*(float64(i)+offset))
		y = append(y, val)
	}
	return Series(y)
}

// GenerateNoise creates reproducible gaussian noise scaled by noiseScale
func GenerateNoise(n int, noiseScale float64, seed uint64) Series {
	r := rand.New(rand.NewPCG(seed, seed))
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.NormFloat64()*noiseScale)
	}
	return Series(y)
}
