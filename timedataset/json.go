package timedataset

import (
	"math"
	"time"

	"github.com/goccy/go-json"
)

// NullFloats encodes missing values as JSON null and decodes null back to NaN
type NullFloats []float64

func (n NullFloats) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	vals := make([]*float64, len(n))
	for i := range n {
		if math.IsNaN(n[i]) || math.IsInf(n[i], 0) {
			continue
		}
		vals[i] = &n[i]
	}
	return json.Marshal(vals)
}

func (n *NullFloats) UnmarshalJSON(data []byte) error {
	var vals []*float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if vals == nil {
		*n = nil
		return nil
	}
	res := make(NullFloats, len(vals))
	for i, v := range vals {
		if v == nil {
			res[i] = math.NaN()
			continue
		}
		res[i] = *v
	}
	*n = res
	return nil
}

type timeDatasetJSON struct {
	T      []time.Time `json:"time"`
	Y      NullFloats  `json:"values"`
	Period int         `json:"period,omitempty"`
}

func (td TimeDataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeDatasetJSON{
		T:      td.T,
		Y:      NullFloats(td.Y),
		Period: td.Period,
	})
}

func (td *TimeDataset) UnmarshalJSON(data []byte) error {
	var raw timeDatasetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	td.T = raw.T
	td.Y = []float64(raw.Y)
	td.Period = raw.Period
	return nil
}
