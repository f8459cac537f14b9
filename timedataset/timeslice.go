package timedataset

import (
	"errors"
	"math"
	"time"
)

var ErrCannotInferFreq = errors.New("cannot infer frequency from time slice")

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// EstimateFreq returns the most common interval between consecutive time points. Ties
// resolve to the smallest interval.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// Subdivide returns the time points at fractional sample positions 0, 1/steps, 2/steps, ...
// len(t)-1, linearly interpolating between neighboring samples. The result has
// steps*(len(t)-1)+1 points. Points are strictly increasing when every gap is at least steps
// nanoseconds; narrower gaps round interior points down to the same nanosecond.
func (t TimeSlice) Subdivide(steps int) TimeSlice {
	if len(t) == 0 {
		return TimeSlice{}
	}
	if steps < 1 {
		steps = 1
	}

	res := make(TimeSlice, 0, steps*(len(t)-1)+1)
	for i := 0; i < len(t)-1; i++ {
		delta := t[i+1].Sub(t[i])
		whole, frac := delta/time.Duration(steps), delta%time.Duration(steps)
		for k := 0; k < steps; k++ {
			dk := time.Duration(k)
			res = append(res, t[i].Add(whole*dk+frac*dk/time.Duration(steps)))
		}
	}
	res = append(res, t[len(t)-1])
	return res
}

// Extend returns cnt time points following the end time spaced by interval
func (t TimeSlice) Extend(cnt int, interval time.Duration) TimeSlice {
	lastTime := t.EndTime()
	res := make(TimeSlice, 0, cnt)
	for i := 0; i < cnt; i++ {
		res = append(res, lastTime.Add(time.Duration(i+1)*interval))
	}
	return res
}
