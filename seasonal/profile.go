package seasonal

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-decomposer/timedataset"
)

// Profile holds the mean of each phase of a period. Phase i covers every sample k where
// k mod Period == i.
type Profile struct {
	Period int                    `json:"period"`
	Means  timedataset.NullFloats `json:"means"`
}

// NewProfile averages the observed values of y per phase. A period of 1 has no seasonal
// structure and produces a zero profile. Phases without observed values are NaN.
func NewProfile(y []float64, period int) (*Profile, error) {
	if period < 1 {
		return nil, fmt.Errorf("got period %d, %w", period, timedataset.ErrInvalidPeriod)
	}
	means := make([]float64, period)
	if period == 1 {
		return &Profile{Period: period, Means: means}, nil
	}

	counts := make([]int, period)
	for k, v := range y {
		if math.IsNaN(v) {
			continue
		}
		means[k%period] += v
		counts[k%period]++
	}
	for i, cnt := range counts {
		if cnt == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] /= float64(cnt)
	}
	return &Profile{Period: period, Means: means}, nil
}

// At returns the phase mean for sample position k. Negative positions wrap backwards.
func (p *Profile) At(k int) float64 {
	idx := k % p.Period
	if idx < 0 {
		idx += p.Period
	}
	return p.Means[idx]
}

// Values tiles the profile over n samples starting at phase 0
func (p *Profile) Values(n int) []float64 {
	return p.ValuesFrom(0, n)
}

// ValuesFrom tiles the profile over n samples starting at sample position start
func (p *Profile) ValuesFrom(start, n int) []float64 {
	if n < 0 {
		n = 0
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = p.At(start + i)
	}
	return res
}
