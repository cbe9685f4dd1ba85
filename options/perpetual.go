package options

import (
	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/pricing"
)

// Perpetual is an American option with no expiry. It prices but exposes no
// Greeks, so it does not satisfy Sensitivities.
type Perpetual struct {
	models.PerpetualParams
	Type models.OptionType
}

// NewPerpetual returns K=100, sig=0.1, r=0.1, U=110, b=0.02 as a call.
func NewPerpetual() *Perpetual {
	return &Perpetual{PerpetualParams: models.DefaultPerpetualParams(), Type: models.Call}
}

func NewPerpetualWith(p models.PerpetualParams, t models.OptionType) *Perpetual {
	return &Perpetual{PerpetualParams: p, Type: t}
}

func (o *Perpetual) Kernel() pricing.PerpetualKernel {
	return pricing.PerpetualFor(o.Type)
}

func (o *Perpetual) OptionType() models.OptionType { return o.Type }

func (o *Perpetual) Toggle() { o.Type = o.Type.Toggle() }

func (o *Perpetual) Params() models.PerpetualParams { return o.PerpetualParams }

func (o *Perpetual) Price() float64 { return o.Kernel().Price(o.PerpetualParams) }

func (o *Perpetual) PriceWithS(u float64) float64 {
	return o.Kernel().Price(o.PerpetualParams.WithU(u))
}
