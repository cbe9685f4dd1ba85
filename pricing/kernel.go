package pricing

import "github.com/bcdannyboy/optsweep/models"

// EuropeanKernel evaluates one side (call or put) of the European closed forms.
type EuropeanKernel interface {
	Type() models.OptionType
	Price(p models.EuropeanParams) float64
	Delta(p models.EuropeanParams) float64
	Gamma(p models.EuropeanParams) float64
	DeltaDiff(p models.EuropeanParams, h float64) float64
	GammaDiff(p models.EuropeanParams, h float64) float64
	// Parity prices the opposite option type from this one through put-call parity.
	Parity(p models.EuropeanParams) float64
}

type CallKernel struct{}

func (CallKernel) Type() models.OptionType { return models.Call }
func (CallKernel) Price(p models.EuropeanParams) float64 { return CallPrice(p) }
func (CallKernel) Delta(p models.EuropeanParams) float64 { return CallDelta(p) }
func (CallKernel) Gamma(p models.EuropeanParams) float64 { return CallGamma(p) }
func (CallKernel) DeltaDiff(p models.EuropeanParams, h float64) float64 { return CallDeltaDiff(p, h) }
func (CallKernel) GammaDiff(p models.EuropeanParams, h float64) float64 { return CallGammaDiff(p, h) }

func (CallKernel) Parity(p models.EuropeanParams) float64 {
	return CallToPut(CallPrice(p), p.T, p.K, p.R, p.U)
}

type PutKernel struct{}

func (PutKernel) Type() models.OptionType { return models.Put }
func (PutKernel) Price(p models.EuropeanParams) float64 { return PutPrice(p) }
func (PutKernel) Delta(p models.EuropeanParams) float64 { return PutDelta(p) }
func (PutKernel) Gamma(p models.EuropeanParams) float64 { return PutGamma(p) }
func (PutKernel) DeltaDiff(p models.EuropeanParams, h float64) float64 { return PutDeltaDiff(p, h) }
func (PutKernel) GammaDiff(p models.EuropeanParams, h float64) float64 { return PutGammaDiff(p, h) }

func (PutKernel) Parity(p models.EuropeanParams) float64 {
	return PutToCall(PutPrice(p), p.T, p.K, p.R, p.U)
}

// EuropeanFor returns the kernel for t. Anything other than Put is priced as a call.
func EuropeanFor(t models.OptionType) EuropeanKernel {
	if t == models.Put {
		return PutKernel{}
	}
	return CallKernel{}
}

// PerpetualKernel evaluates one side of the perpetual American closed form.
// It has no Greeks.
type PerpetualKernel interface {
	Type() models.OptionType
	Price(p models.PerpetualParams) float64
}

type PerpetualCallKernel struct{}

func (PerpetualCallKernel) Type() models.OptionType { return models.Call }
func (PerpetualCallKernel) Price(p models.PerpetualParams) float64 { return PerpetualCallPrice(p) }

type PerpetualPutKernel struct{}

func (PerpetualPutKernel) Type() models.OptionType { return models.Put }
func (PerpetualPutKernel) Price(p models.PerpetualParams) float64 { return PerpetualPutPrice(p) }

func PerpetualFor(t models.OptionType) PerpetualKernel {
	if t == models.Put {
		return PerpetualPutKernel{}
	}
	return PerpetualCallKernel{}
}
