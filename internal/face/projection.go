package face

import (
	"encoding/json"
	"fmt"
	"os"
)

// Projection reduces a raw embedding into the comparison space. It is a
// linear map stored as PCA components with the training-set mean: applying
// it centers the input on the mean and multiplies by the component matrix.
type Projection struct {
	Components [][]float32 `json:"components"`
	Mean       []float32   `json:"mean"`
}

// LoadProjection reads a projection model from a JSON file. The service
// refuses to start without it.
func LoadProjection(path string) (*Projection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("projection model not found at %s", path)
		}
		return nil, fmt.Errorf("reading projection model: %w", err)
	}

	var p Projection
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing projection model %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid projection model %s: %w", path, err)
	}

	return &p, nil
}

func (p *Projection) validate() error {
	if len(p.Components) == 0 {
		return fmt.Errorf("no components")
	}
	if len(p.Mean) == 0 {
		return fmt.Errorf("no mean vector")
	}
	for i, row := range p.Components {
		if len(row) != len(p.Mean) {
			return fmt.Errorf("component %d has %d values, mean has %d", i, len(row), len(p.Mean))
		}
	}
	return nil
}

// InputDim returns the raw embedding length the projection expects.
func (p *Projection) InputDim() int {
	return len(p.Mean)
}

// OutputDim returns the length of projected vectors.
func (p *Projection) OutputDim() int {
	return len(p.Components)
}

// Apply centers v on the mean and multiplies it by the component matrix.
func (p *Projection) Apply(v []float32) ([]float32, error) {
	if len(v) != len(p.Mean) {
		return nil, fmt.Errorf("projection expects %d values, got %d", len(p.Mean), len(v))
	}

	centered := make([]float64, len(v))
	for i := range v {
		centered[i] = float64(v[i]) - float64(p.Mean[i])
	}

	out := make([]float32, len(p.Components))
	for i, row := range p.Components {
		var sum float64
		for j, weight := range row {
			sum += centered[j] * float64(weight)
		}
		out[i] = float32(sum)
	}

	return out, nil
}
