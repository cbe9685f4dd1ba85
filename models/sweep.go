package models

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Parameter selects the input varied across a sweep.
type Parameter int

const (
	Expiry Parameter = iota
	Strike
	Sigma
	Interest
	Underlying
	CostOfCarry
)

var parameterNames = map[Parameter]string{
	Expiry:      "expiry",
	Strike:      "strike",
	Sigma:       "sigma",
	Interest:    "interest",
	Underlying:  "underlying",
	CostOfCarry: "cost_of_carry",
}

func (p Parameter) String() string {
	if name, ok := parameterNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Parameter(%d)", int(p))
}

// ParseParameter accepts the parameter name or its usual symbol (T, K, sig, r, U, b).
func ParseParameter(s string) (Parameter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expiry", "t":
		return Expiry, nil
	case "strike", "k":
		return Strike, nil
	case "sigma", "sig", "volatility":
		return Sigma, nil
	case "interest", "r", "rate":
		return Interest, nil
	case "underlying", "u", "s":
		return Underlying, nil
	case "cost_of_carry", "carry", "b":
		return CostOfCarry, nil
	}
	return Underlying, fmt.Errorf("unknown sweep parameter %q", s)
}

// Metric selects what the batch pricer computes for each row.
type Metric int

const (
	Price Metric = iota
	Delta
	Gamma
)

func (m Metric) String() string {
	switch m {
	case Price:
		return "price"
	case Delta:
		return "delta"
	case Gamma:
		return "gamma"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price":
		return Price, nil
	case "delta":
		return Delta, nil
	case "gamma":
		return Gamma, nil
	}
	return Price, fmt.Errorf("unknown metric %q", s)
}

type EuropeanMatrix []EuropeanParams

type PerpetualMatrix []PerpetualParams

// Values returns the matrix as raw rows in T, K, sig, r, U, b order.
func (m EuropeanMatrix) Values() [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = row.Values()
	}
	return out
}

// Values returns the matrix as raw rows in K, sig, r, U, b order.
func (m PerpetualMatrix) Values() [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = row.Values()
	}
	return out
}

func EuropeanMatrixFromValues(rows [][]float64) (EuropeanMatrix, error) {
	m := make(EuropeanMatrix, len(rows))
	for i, row := range rows {
		p, err := EuropeanParamsFromValues(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		m[i] = p
	}
	return m, nil
}

func PerpetualMatrixFromValues(rows [][]float64) (PerpetualMatrix, error) {
	m := make(PerpetualMatrix, len(rows))
	for i, row := range rows {
		p, err := PerpetualParamsFromValues(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		m[i] = p
	}
	return m, nil
}

// ResultRow is the (call, put) pair computed for one parameter row.
type ResultRow struct {
	Call float64
	Put  float64
}

// ResultMatrix row i always corresponds to row i of the priced matrix.
type ResultMatrix []ResultRow

func (m ResultMatrix) Values() [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = []float64{row.Call, row.Put}
	}
	return out
}

// Dense returns an N×2 matrix with calls in column 0 and puts in column 1.
// It returns nil for an empty result since gonum has no zero-row matrices.
func (m ResultMatrix) Dense() *mat.Dense {
	if len(m) == 0 {
		return nil
	}
	data := make([]float64, 0, 2*len(m))
	for _, row := range m {
		data = append(data, row.Call, row.Put)
	}
	return mat.NewDense(len(m), 2, data)
}
