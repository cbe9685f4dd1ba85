package sweep

import (
	"github.com/bcdannyboy/optsweep/models"
)

// GenerateEuropeanMatrix emits one row per mesh point between the base value of
// varied and end, holding every other input at its base value.
func GenerateEuropeanMatrix(base models.EuropeanParams, end float64, steps int, varied models.Parameter) (models.EuropeanMatrix, error) {
	return defaultSweeper.GenerateEuropeanMatrix(base, end, steps, varied)
}

// GeneratePerpetualMatrix is GenerateEuropeanMatrix for perpetual inputs.
// Expiry is not a perpetual input and falls back to Underlying.
func GeneratePerpetualMatrix(base models.PerpetualParams, end float64, steps int, varied models.Parameter) (models.PerpetualMatrix, error) {
	return defaultSweeper.GeneratePerpetualMatrix(base, end, steps, varied)
}

type europeanField struct {
	get func(models.EuropeanParams) float64
	set func(*models.EuropeanParams, float64)
}

var europeanFields = map[models.Parameter]europeanField{
	models.Expiry:      {func(p models.EuropeanParams) float64 { return p.T }, func(p *models.EuropeanParams, v float64) { p.T = v }},
	models.Strike:      {func(p models.EuropeanParams) float64 { return p.K }, func(p *models.EuropeanParams, v float64) { p.K = v }},
	models.Sigma:       {func(p models.EuropeanParams) float64 { return p.Sig }, func(p *models.EuropeanParams, v float64) { p.Sig = v }},
	models.Interest:    {func(p models.EuropeanParams) float64 { return p.R }, func(p *models.EuropeanParams, v float64) { p.R = v }},
	models.Underlying:  {func(p models.EuropeanParams) float64 { return p.U }, func(p *models.EuropeanParams, v float64) { p.U = v }},
	models.CostOfCarry: {func(p models.EuropeanParams) float64 { return p.B }, func(p *models.EuropeanParams, v float64) { p.B = v }},
}

type perpetualField struct {
	get func(models.PerpetualParams) float64
	set func(*models.PerpetualParams, float64)
}

var perpetualFields = map[models.Parameter]perpetualField{
	models.Strike:      {func(p models.PerpetualParams) float64 { return p.K }, func(p *models.PerpetualParams, v float64) { p.K = v }},
	models.Sigma:       {func(p models.PerpetualParams) float64 { return p.Sig }, func(p *models.PerpetualParams, v float64) { p.Sig = v }},
	models.Interest:    {func(p models.PerpetualParams) float64 { return p.R }, func(p *models.PerpetualParams, v float64) { p.R = v }},
	models.Underlying:  {func(p models.PerpetualParams) float64 { return p.U }, func(p *models.PerpetualParams, v float64) { p.U = v }},
	models.CostOfCarry: {func(p models.PerpetualParams) float64 { return p.B }, func(p *models.PerpetualParams, v float64) { p.B = v }},
}

func (s *Sweeper) GenerateEuropeanMatrix(base models.EuropeanParams, end float64, steps int, varied models.Parameter) (models.EuropeanMatrix, error) {
	field, ok := europeanFields[varied]
	if !ok {
		s.logger().Warn("unknown sweep parameter, varying underlying price instead",
			"parameter", varied.String(), "kind", "european")
		field = europeanFields[models.Underlying]
	}

	mesh, err := GenerateMesh(field.get(base), end, steps)
	if err != nil {
		return nil, err
	}

	matrix := make(models.EuropeanMatrix, len(mesh))
	for i, v := range mesh {
		row := base
		field.set(&row, v)
		matrix[i] = row
	}
	return matrix, nil
}

func (s *Sweeper) GeneratePerpetualMatrix(base models.PerpetualParams, end float64, steps int, varied models.Parameter) (models.PerpetualMatrix, error) {
	field, ok := perpetualFields[varied]
	if !ok {
		s.logger().Warn("unknown sweep parameter, varying underlying price instead",
			"parameter", varied.String(), "kind", "perpetual")
		field = perpetualFields[models.Underlying]
	}

	mesh, err := GenerateMesh(field.get(base), end, steps)
	if err != nil {
		return nil, err
	}

	matrix := make(models.PerpetualMatrix, len(mesh))
	for i, v := range mesh {
		row := base
		field.set(&row, v)
		matrix[i] = row
	}
	return matrix, nil
}

// VariedValue reads the swept input back out of a European row.
func VariedValue(p models.EuropeanParams, varied models.Parameter) float64 {
	field, ok := europeanFields[varied]
	if !ok {
		field = europeanFields[models.Underlying]
	}
	return field.get(p)
}

// PerpetualVariedValue reads the swept input back out of a perpetual row.
func PerpetualVariedValue(p models.PerpetualParams, varied models.Parameter) float64 {
	field, ok := perpetualFields[varied]
	if !ok {
		field = perpetualFields[models.Underlying]
	}
	return field.get(p)
}
