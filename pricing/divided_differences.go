package pricing

import "github.com/bcdannyboy/optsweep/models"

// centralDelta is (f(U+h) - f(U-h)) / 2h.
func centralDelta(price func(models.EuropeanParams) float64, p models.EuropeanParams, h float64) float64 {
	return (price(p.WithU(p.U+h)) - price(p.WithU(p.U-h))) / (2 * h)
}

// centralGamma is (f(U+h) - 2f(U) + f(U-h)) / h².
func centralGamma(price func(models.EuropeanParams) float64, p models.EuropeanParams, h float64) float64 {
	return (price(p.WithU(p.U+h)) - 2*price(p) + price(p.WithU(p.U-h))) / (h * h)
}

func CallDeltaDiff(p models.EuropeanParams, h float64) float64 {
	return centralDelta(CallPrice, p, h)
}

func PutDeltaDiff(p models.EuropeanParams, h float64) float64 {
	return centralDelta(PutPrice, p, h)
}

func CallGammaDiff(p models.EuropeanParams, h float64) float64 {
	return centralGamma(CallPrice, p, h)
}

func PutGammaDiff(p models.EuropeanParams, h float64) float64 {
	return centralGamma(PutPrice, p, h)
}
