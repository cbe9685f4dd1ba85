// Package pricing holds the closed-form kernels: generalized Black-Scholes-Merton
// for European options and the characteristic-root formula for perpetual
// American options. Every function is pure. Inputs are not validated, so a zero
// expiry or volatility comes back as NaN or Inf.
package pricing

import (
	"math"

	"github.com/bcdannyboy/optsweep/models"
)

func d1d2(p models.EuropeanParams) (float64, float64) {
	sqrtT := math.Sqrt(p.T)
	d1 := (math.Log(p.U/p.K) + (p.B+p.Sig*p.Sig/2)*p.T) / (p.Sig * sqrtT)
	return d1, d1 - p.Sig*sqrtT
}

// carryFactor is e^{(b-r)T}.
func carryFactor(p models.EuropeanParams) float64 {
	return math.Exp((p.B - p.R) * p.T)
}

// discount is e^{-rT}.
func discount(T, r float64) float64 {
	return math.Exp(-r * T)
}

func CallPrice(p models.EuropeanParams) float64 {
	d1, d2 := d1d2(p)
	return p.U*carryFactor(p)*normCDF(d1) - p.K*discount(p.T, p.R)*normCDF(d2)
}

func PutPrice(p models.EuropeanParams) float64 {
	d1, d2 := d1d2(p)
	return p.K*discount(p.T, p.R)*normCDF(-d2) - p.U*carryFactor(p)*normCDF(-d1)
}

func CallDelta(p models.EuropeanParams) float64 {
	d1, _ := d1d2(p)
	return carryFactor(p) * normCDF(d1)
}

func PutDelta(p models.EuropeanParams) float64 {
	return CallDelta(p) - carryFactor(p)
}

func CallGamma(p models.EuropeanParams) float64 {
	d1, _ := d1d2(p)
	return normPDF(d1) * carryFactor(p) / (p.U * p.Sig * math.Sqrt(p.T))
}

// PutGamma equals CallGamma; gamma does not depend on the option type.
func PutGamma(p models.EuropeanParams) float64 {
	return CallGamma(p)
}
