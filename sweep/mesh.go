// Package sweep generates parameter meshes and matrices and prices them in
// batch, row i of every result lining up with row i of its input.
package sweep

import (
	"fmt"

	"github.com/bcdannyboy/optsweep/models"
	"gonum.org/v1/gonum/floats"
)

// GenerateMesh returns steps+1 evenly spaced values from begin to end inclusive.
func GenerateMesh(begin, end float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("mesh [%v, %v] with %d steps: %w", begin, end, steps, models.ErrInvalidSteps)
	}
	return floats.Span(make([]float64, steps+1), begin, end), nil
}
