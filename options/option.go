// Package options wraps the pricing kernels in stateful option values that
// carry their parameters and a call/put flag.
package options

import (
	"github.com/bcdannyboy/optsweep/models"
)

// Option is the capability every option variant has.
type Option interface {
	Price() float64
	PriceWithS(u float64) float64
	OptionType() models.OptionType
	Toggle()
}

// Sensitivities is implemented by variants with closed-form Greeks.
type Sensitivities interface {
	Delta() float64
	Gamma() float64
}

// Delta returns o's delta, or a *models.NotImplementedError when the variant
// has no delta.
func Delta(o Option) (float64, error) {
	s, ok := o.(Sensitivities)
	if !ok {
		return 0, &models.NotImplementedError{Op: "Delta()"}
	}
	return s.Delta(), nil
}

// Gamma returns o's gamma, or a *models.NotImplementedError when the variant
// has no gamma.
func Gamma(o Option) (float64, error) {
	s, ok := o.(Sensitivities)
	if !ok {
		return 0, &models.NotImplementedError{Op: "Gamma()"}
	}
	return s.Gamma(), nil
}

// PriceCurve prices o at each underlying value in mesh.
func PriceCurve(o Option, mesh []float64) []float64 {
	out := make([]float64, len(mesh))
	for i, u := range mesh {
		out[i] = o.PriceWithS(u)
	}
	return out
}

var (
	_ Option        = (*European)(nil)
	_ Sensitivities = (*European)(nil)
	_ Option        = (*Perpetual)(nil)
)
