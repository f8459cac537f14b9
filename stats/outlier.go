package stats

import (
	"math"
	"sort"
)

// DetectOutliers returns the indices of values outside of the Tukey fences built from the lower
// and upper percentiles of y. Missing values are ignored.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, 0, len(y))
	for _, v := range y {
		if !math.IsNaN(v) {
			yCopy = append(yCopy, v)
		}
	}
	if len(yCopy) == 0 {
		return nil
	}
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)) * upperPerc))
	lowerIdx = min(max(lowerIdx, 0), len(yCopy)-1)
	upperIdx = min(max(upperIdx, 0), len(yCopy)-1)

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	if innerRange == 0 {
		return outsideValue(y, lower)
	}
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) {
			continue
		}
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

func outsideValue(y []float64, val float64) []int {
	var outlierIdx []int
	for i, v := range y {
		if !math.IsNaN(v) && v != val {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
