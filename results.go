package decomposer

import (
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/aouyang1/go-decomposer/trend"
)

// Results holds the components of a decomposition. Residual is computed against TrendCoarse
// so that Residual = Data - TrendCoarse - Seasonal at every sample. Trend is evaluated at the
// configured resolution.
type Results struct {
	Trend       *timedataset.TimeDataset `json:"trend"`
	TrendCoarse *timedataset.TimeDataset `json:"trend_coarse"`
	Seasonal    *timedataset.TimeDataset `json:"seasonal"`
	Residual    *timedataset.TimeDataset `json:"residual"`
	Period      int                      `json:"period"`
	Model       *trend.PolynomialModel   `json:"model"`
}

// ForecastResults holds the extrapolated trend and seasonal components after the training data
type ForecastResults struct {
	T        []time.Time            `json:"time"`
	Forecast timedataset.NullFloats `json:"forecast"`
	Trend    timedataset.NullFloats `json:"trend"`
	Seasonal timedataset.NullFloats `json:"seasonal"`
}
