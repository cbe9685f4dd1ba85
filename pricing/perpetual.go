package pricing

import (
	"math"

	"github.com/bcdannyboy/optsweep/models"
)

// perpetualRoots returns the two roots of the perpetual characteristic equation,
// y1 for calls and y2 for puts.
func perpetualRoots(p models.PerpetualParams) (float64, float64) {
	sig2 := p.Sig * p.Sig
	a := 0.5 - p.B/sig2
	disc := math.Sqrt(a*a + 2*p.R/sig2)
	return a + disc, a - disc
}

func PerpetualCallRoot(p models.PerpetualParams) float64 {
	y1, _ := perpetualRoots(p)
	return y1
}

func PerpetualPutRoot(p models.PerpetualParams) float64 {
	_, y2 := perpetualRoots(p)
	return y2
}

// PerpetualCallPrice prices a perpetual American call. A degenerate root of
// 0 or 1 prices the claim at the underlying.
func PerpetualCallPrice(p models.PerpetualParams) float64 {
	y1 := PerpetualCallRoot(p)
	if y1 == 0 || y1 == 1 {
		return p.U
	}
	return (p.K / (y1 - 1)) * math.Pow((y1-1)/y1*p.U/p.K, y1)
}

// PerpetualPutPrice prices a perpetual American put, with the same degenerate
// root handling as the call.
func PerpetualPutPrice(p models.PerpetualParams) float64 {
	y2 := PerpetualPutRoot(p)
	if y2 == 0 || y2 == 1 {
		return p.U
	}
	return (p.K / (1 - y2)) * math.Pow((y2-1)/y2*p.U/p.K, y2)
}
