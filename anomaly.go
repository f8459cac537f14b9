package decomposer

import (
	"time"

	"github.com/aouyang1/go-decomposer/stats"
)

// Anomaly is a training sample whose residual falls outside of the Tukey fences
type Anomaly struct {
	Index    int       `json:"index"`
	T        time.Time `json:"time"`
	Value    float64   `json:"value"`
	Residual float64   `json:"residual"`
}

// DetectAnomalies flags the training samples whose residual lies outside the fences configured
// by the outlier options. Samples with missing values are never flagged.
func (d *Decomposer) DetectAnomalies() ([]Anomaly, error) {
	if d.fitResults == nil {
		return nil, ErrNotFit
	}
	residual := d.fitResults.Residual
	td := d.fitTrainingData

	idxs := stats.DetectOutliers(
		residual.Y,
		d.opt.OutlierOptions.LowerPercentile,
		d.opt.OutlierOptions.UpperPercentile,
		d.opt.OutlierOptions.TukeyFactor,
	)
	anomalies := make([]Anomaly, 0, len(idxs))
	for _, idx := range idxs {
		anomalies = append(anomalies, Anomaly{
			Index:    idx,
			T:        td.T[idx],
			Value:    td.Y[idx],
			Residual: residual.Y[idx],
		})
	}
	return anomalies, nil
}
