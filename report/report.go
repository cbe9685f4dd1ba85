// Package report assembles sweep results into a JSON document.
package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bcdannyboy/optsweep/models"
	"github.com/shopspring/decimal"
	"github.com/xhhuango/json"
)

// Precision is the number of decimal places kept in a report.
const Precision = 8

var ErrRowCount = errors.New("result rows do not match the sweep mesh")

type Pair struct {
	Call float64 `json:"call"`
	Put  float64 `json:"put"`
}

type Row struct {
	Value float64 `json:"value"`
	Price *Pair   `json:"price,omitempty"`
	Delta *Pair   `json:"delta,omitempty"`
	Gamma *Pair   `json:"gamma,omitempty"`
}

type Sweep struct {
	Kind        string             `json:"kind"`
	Varied      string             `json:"varied"`
	Base        map[string]float64 `json:"base"`
	Steps       int                `json:"steps"`
	Rows        []Row              `json:"rows"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// New starts a report with one row per mesh value.
func New(kind string, varied models.Parameter, base map[string]float64, mesh []float64) *Sweep {
	rows := make([]Row, len(mesh))
	for i, v := range mesh {
		rows[i].Value = Round(v)
	}
	return &Sweep{
		Kind:        kind,
		Varied:      varied.String(),
		Base:        base,
		Steps:       len(mesh) - 1,
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
	}
}

// EuropeanBase names the columns of a European row for the report header.
func EuropeanBase(p models.EuropeanParams) map[string]float64 {
	return map[string]float64{"T": p.T, "K": p.K, "sig": p.Sig, "r": p.R, "U": p.U, "b": p.B}
}

func PerpetualBase(p models.PerpetualParams) map[string]float64 {
	return map[string]float64{"K": p.K, "sig": p.Sig, "r": p.R, "U": p.U, "b": p.B}
}

// Add stores one metric's call/put results against the mesh rows.
func (s *Sweep) Add(metric models.Metric, results models.ResultMatrix) error {
	if len(results) != len(s.Rows) {
		return fmt.Errorf("%s: got %d rows, want %d: %w", metric, len(results), len(s.Rows), ErrRowCount)
	}
	for i, r := range results {
		pair := &Pair{Call: Round(r.Call), Put: Round(r.Put)}
		switch metric {
		case models.Price:
			s.Rows[i].Price = pair
		case models.Delta:
			s.Rows[i].Delta = pair
		case models.Gamma:
			s.Rows[i].Gamma = pair
		default:
			return fmt.Errorf("unknown metric %s", metric)
		}
	}
	return nil
}

func (s *Sweep) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *Sweep) WriteFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round maps NaN and ±Inf to zero and rounds to Precision places.
func Round(f float64) float64 {
	return decimal.NewFromFloat(sanitizeFloat(f)).Round(Precision).InexactFloat64()
}
