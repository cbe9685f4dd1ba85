package options

import (
	"errors"
	"strings"
	"testing"

	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/pricing"
)

func TestPerpetual_DefaultPrices(t *testing.T) {
	o := NewPerpetual()
	if !almostEqual(o.Price(), 18.5035, 1e-4) {
		t.Errorf("expected perpetual call 18.5035; got %.6f", o.Price())
	}
	o.Toggle()
	if !almostEqual(o.Price(), 3.03106, 1e-5) {
		t.Errorf("expected perpetual put 3.03106; got %.6f", o.Price())
	}
	if got, want := o.PriceWithS(100), pricing.PerpetualPutPrice(o.WithU(100)); got != want {
		t.Errorf("PriceWithS: expected %v; got %v", want, got)
	}
}

func TestPerpetual_HasNoGreeks(t *testing.T) {
	var o Option = NewPerpetual()
	if _, ok := o.(Sensitivities); ok {
		t.Fatalf("perpetual option must not expose Delta/Gamma")
	}

	_, err := Delta(o)
	var nie *models.NotImplementedError
	if !errors.As(err, &nie) || nie.Op != "Delta()" {
		t.Fatalf("expected NotImplementedError for Delta(); got %v", err)
	}
	if !strings.Contains(err.Error(), "Delta()") {
		t.Errorf("expected error to name the operation; got %q", err.Error())
	}
	if _, err := Gamma(o); !errors.As(err, &nie) || nie.Op != "Gamma()" {
		t.Errorf("expected NotImplementedError for Gamma(); got %v", err)
	}
}

func TestCapabilityHelpers_European(t *testing.T) {
	var o Option = NewEuropean()
	d, err := Delta(o)
	if err != nil || d != o.(*European).Delta() {
		t.Errorf("expected European delta; got %v, %v", d, err)
	}
	g, err := Gamma(o)
	if err != nil || g != o.(*European).Gamma() {
		t.Errorf("expected European gamma; got %v, %v", g, err)
	}
}

func TestPriceCurve(t *testing.T) {
	mesh := []float64{10, 20, 30, 40, 50}
	for _, o := range []Option{NewEuropean(), NewPerpetual()} {
		curve := PriceCurve(o, mesh)
		if len(curve) != len(mesh) {
			t.Fatalf("expected %d prices; got %d", len(mesh), len(curve))
		}
		for i, u := range mesh {
			if curve[i] != o.PriceWithS(u) {
				t.Errorf("point %d: expected %v; got %v", i, o.PriceWithS(u), curve[i])
			}
		}
	}
}
