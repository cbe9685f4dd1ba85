package options

import (
	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/pricing"
)

// European is a European option under generalized Black-Scholes-Merton.
// It is a plain value; assigning it copies parameters and type.
type European struct {
	models.EuropeanParams
	Type models.OptionType
}

// NewEuropean returns the textbook default: T=0.25, K=65, sig=0.30, r=0.08,
// U=60, b=0.08, as a call.
func NewEuropean() *European {
	return &European{EuropeanParams: models.DefaultEuropeanParams(), Type: models.Call}
}

func NewEuropeanWith(p models.EuropeanParams, t models.OptionType) *European {
	return &European{EuropeanParams: p, Type: t}
}

func (o *European) Kernel() pricing.EuropeanKernel {
	return pricing.EuropeanFor(o.Type)
}

func (o *European) OptionType() models.OptionType { return o.Type }

func (o *European) Toggle() { o.Type = o.Type.Toggle() }

func (o *European) Params() models.EuropeanParams { return o.EuropeanParams }

func (o *European) Price() float64 { return o.Kernel().Price(o.EuropeanParams) }

func (o *European) Delta() float64 { return o.Kernel().Delta(o.EuropeanParams) }

func (o *European) Gamma() float64 { return o.Kernel().Gamma(o.EuropeanParams) }

// Parity returns the price of the opposite option type derived through
// put-call parity.
func (o *European) Parity() float64 { return o.Kernel().Parity(o.EuropeanParams) }

func (o *European) PriceWithS(u float64) float64 {
	return o.Kernel().Price(o.EuropeanParams.WithU(u))
}

func (o *European) DeltaDiff(h float64) float64 {
	return o.Kernel().DeltaDiff(o.EuropeanParams, h)
}

func (o *European) GammaDiff(h float64) float64 {
	return o.Kernel().GammaDiff(o.EuropeanParams, h)
}

// DiffRow compares divided-difference estimates at step H with the closed forms.
type DiffRow struct {
	H              float64
	CallDelta      float64
	CallGamma      float64
	PutDelta       float64
	PutGamma       float64
	ExactCallDelta float64
	ExactPutDelta  float64
	ExactGamma     float64
}

// DividedDifferenceSweep estimates call and put delta and gamma at every step
// size in hs. The option itself is not modified.
func DividedDifferenceSweep(o European, hs []float64) []DiffRow {
	p := o.EuropeanParams
	exactCall, exactPut, exactGamma := pricing.CallDelta(p), pricing.PutDelta(p), pricing.CallGamma(p)
	rows := make([]DiffRow, len(hs))
	for i, h := range hs {
		rows[i] = DiffRow{
			H:              h,
			CallDelta:      pricing.CallDeltaDiff(p, h),
			CallGamma:      pricing.CallGammaDiff(p, h),
			PutDelta:       pricing.PutDeltaDiff(p, h),
			PutGamma:       pricing.PutGammaDiff(p, h),
			ExactCallDelta: exactCall,
			ExactPutDelta:  exactPut,
			ExactGamma:     exactGamma,
		}
	}
	return rows
}
