package models

import "fmt"

// EuropeanParams holds the generalized Black-Scholes-Merton inputs.
// Tabular column order is T, K, sig, r, U, b.
type EuropeanParams struct {
	T   float64 // Time to expiry in years
	K   float64 // Strike price
	Sig float64 // Volatility
	R   float64 // Risk-free interest rate
	U   float64 // Price of the underlying
	B   float64 // Cost of carry
}

// PerpetualParams holds the perpetual American inputs.
// Tabular column order is K, sig, r, U, b.
type PerpetualParams struct {
	K   float64 // Strike price
	Sig float64 // Volatility
	R   float64 // Risk-free interest rate
	U   float64 // Price of the underlying
	B   float64 // Cost of carry
}

const (
	EuropeanColumns  = 6
	PerpetualColumns = 5
)

func DefaultEuropeanParams() EuropeanParams {
	return EuropeanParams{T: 0.25, K: 65, Sig: 0.30, R: 0.08, U: 60, B: 0.08}
}

func DefaultPerpetualParams() PerpetualParams {
	return PerpetualParams{K: 100, Sig: 0.1, R: 0.1, U: 110, B: 0.02}
}

// WithU returns a copy of p with the underlying replaced.
func (p EuropeanParams) WithU(u float64) EuropeanParams {
	p.U = u
	return p
}

func (p PerpetualParams) WithU(u float64) PerpetualParams {
	p.U = u
	return p
}

// Values returns the row in T, K, sig, r, U, b order.
func (p EuropeanParams) Values() []float64 {
	return []float64{p.T, p.K, p.Sig, p.R, p.U, p.B}
}

// Values returns the row in K, sig, r, U, b order.
func (p PerpetualParams) Values() []float64 {
	return []float64{p.K, p.Sig, p.R, p.U, p.B}
}

func EuropeanParamsFromValues(row []float64) (EuropeanParams, error) {
	if len(row) != EuropeanColumns {
		return EuropeanParams{}, fmt.Errorf("european row has %d columns, want %d: %w", len(row), EuropeanColumns, ErrColumnCount)
	}
	return EuropeanParams{T: row[0], K: row[1], Sig: row[2], R: row[3], U: row[4], B: row[5]}, nil
}

func PerpetualParamsFromValues(row []float64) (PerpetualParams, error) {
	if len(row) != PerpetualColumns {
		return PerpetualParams{}, fmt.Errorf("perpetual row has %d columns, want %d: %w", len(row), PerpetualColumns, ErrColumnCount)
	}
	return PerpetualParams{K: row[0], Sig: row[1], R: row[2], U: row[3], B: row[4]}, nil
}

// Validate reports inputs the closed forms cannot price. The kernels themselves
// never call it; NaN and Inf propagate from bad inputs.
func (p EuropeanParams) Validate() error {
	switch {
	case !(p.T > 0):
		return fmt.Errorf("expiry T=%v must be positive: %w", p.T, ErrInvalidParams)
	case !(p.Sig > 0):
		return fmt.Errorf("volatility sig=%v must be positive: %w", p.Sig, ErrInvalidParams)
	case !(p.K > 0):
		return fmt.Errorf("strike K=%v must be positive: %w", p.K, ErrInvalidParams)
	case !(p.U > 0):
		return fmt.Errorf("underlying U=%v must be positive: %w", p.U, ErrInvalidParams)
	}
	return nil
}

func (p PerpetualParams) Validate() error {
	switch {
	case !(p.Sig > 0):
		return fmt.Errorf("volatility sig=%v must be positive: %w", p.Sig, ErrInvalidParams)
	case !(p.K > 0):
		return fmt.Errorf("strike K=%v must be positive: %w", p.K, ErrInvalidParams)
	case !(p.U > 0):
		return fmt.Errorf("underlying U=%v must be positive: %w", p.U, ErrInvalidParams)
	}
	return nil
}
