package models

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseOptionType(t *testing.T) {
	for in, want := range map[string]OptionType{"call": Call, " C ": Call, "Put": Put, "p": Put} {
		got, err := ParseOptionType(in)
		if err != nil || got != want {
			t.Errorf("ParseOptionType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOptionType("straddle"); err == nil {
		t.Errorf("expected an error for an unknown option type")
	}
	if Call.Toggle() != Put || Put.Toggle() != Call {
		t.Errorf("expected Toggle to swap call and put")
	}
}

func TestParseParameterAndMetric(t *testing.T) {
	for in, want := range map[string]Parameter{"T": Expiry, "k": Strike, "sig": Sigma, "r": Interest, "U": Underlying, "b": CostOfCarry} {
		got, err := ParseParameter(in)
		if err != nil || got != want {
			t.Errorf("ParseParameter(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseParameter("rho"); err == nil {
		t.Errorf("expected an error for an unknown parameter")
	}
	if m, err := ParseMetric("gamma"); err != nil || m != Gamma {
		t.Errorf("ParseMetric(gamma) = %v, %v", m, err)
	}
	if Parameter(42).String() != "Parameter(42)" || Metric(9).String() != "Metric(9)" {
		t.Errorf("unexpected fallback names %s %s", Parameter(42), Metric(9))
	}
}

func TestFromValues_ColumnCount(t *testing.T) {
	if _, err := EuropeanParamsFromValues([]float64{1, 2, 3, 4, 5}); !errors.Is(err, ErrColumnCount) {
		t.Errorf("expected ErrColumnCount; got %v", err)
	}
	if _, err := PerpetualParamsFromValues([]float64{1, 2, 3, 4, 5, 6}); !errors.Is(err, ErrColumnCount) {
		t.Errorf("expected ErrColumnCount; got %v", err)
	}
	p, err := PerpetualParamsFromValues(DefaultPerpetualParams().Values())
	if err != nil || p != DefaultPerpetualParams() {
		t.Errorf("expected round trip; got %+v, %v", p, err)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultEuropeanParams().Validate(); err != nil {
		t.Errorf("expected defaults to validate; got %v", err)
	}
	bad := DefaultEuropeanParams()
	bad.T = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for T=0; got %v", err)
	}
	perp := DefaultPerpetualParams()
	perp.Sig = math.NaN()
	if err := perp.Validate(); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams for NaN volatility; got %v", err)
	}
}

func TestNotImplementedError(t *testing.T) {
	err := &NotImplementedError{Op: "Delta()"}
	if !strings.HasPrefix(err.Error(), "Delta() has been called") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !strings.HasPrefix((&NotImplementedError{}).Error(), "an unspecified function") {
		t.Errorf("expected a placeholder for an empty op")
	}
}

func TestResultMatrix(t *testing.T) {
	m := ResultMatrix{{Call: 1, Put: 2}, {Call: 3, Put: 4}}
	d := m.Dense()
	if r, c := d.Dims(); r != 2 || c != 2 || d.At(1, 1) != 4 {
		t.Errorf("unexpected dense form %v", d)
	}
	if v := m.Values(); v[1][0] != 3 {
		t.Errorf("unexpected values %v", v)
	}
}
