package sweep

import (
	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/pricing"
)

// europeanPair returns the call and put functions for metric, and whether the
// metric was recognized.
func europeanPair(metric models.Metric) (call, put func(models.EuropeanParams) float64, ok bool) {
	switch metric {
	case models.Price:
		return pricing.CallPrice, pricing.PutPrice, true
	case models.Delta:
		return pricing.CallDelta, pricing.PutDelta, true
	case models.Gamma:
		return pricing.CallGamma, pricing.PutGamma, true
	}
	return pricing.CallPrice, pricing.PutPrice, false
}

func (s *Sweeper) europeanPair(metric models.Metric) (call, put func(models.EuropeanParams) float64) {
	call, put, ok := europeanPair(metric)
	if !ok {
		s.logger().Warn("unknown pricer output, computing price instead", "metric", metric.String())
	}
	return call, put
}

// PriceEuropeanMatrix computes (call, put) for metric on every row.
func (s *Sweeper) PriceEuropeanMatrix(m models.EuropeanMatrix, metric models.Metric) models.ResultMatrix {
	call, put := s.europeanPair(metric)
	out := make(models.ResultMatrix, len(m))
	for i, row := range m {
		out[i] = models.ResultRow{Call: call(row), Put: put(row)}
	}
	return out
}

// PricePerpetualMatrix computes (call, put) perpetual prices on every row.
func (s *Sweeper) PricePerpetualMatrix(m models.PerpetualMatrix) models.ResultMatrix {
	out := make(models.ResultMatrix, len(m))
	for i, row := range m {
		out[i] = models.ResultRow{Call: pricing.PerpetualCallPrice(row), Put: pricing.PerpetualPutPrice(row)}
	}
	return out
}

func PriceEuropeanMatrix(m models.EuropeanMatrix, metric models.Metric) models.ResultMatrix {
	return defaultSweeper.PriceEuropeanMatrix(m, metric)
}

func PricePerpetualMatrix(m models.PerpetualMatrix) models.ResultMatrix {
	return defaultSweeper.PricePerpetualMatrix(m)
}

func PriceMatrix(m models.EuropeanMatrix) models.ResultMatrix {
	return PriceEuropeanMatrix(m, models.Price)
}

func DeltaMatrix(m models.EuropeanMatrix) models.ResultMatrix {
	return PriceEuropeanMatrix(m, models.Delta)
}

func GammaMatrix(m models.EuropeanMatrix) models.ResultMatrix {
	return PriceEuropeanMatrix(m, models.Gamma)
}
