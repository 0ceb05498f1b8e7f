package face

import (
	"math"
	"testing"
)

func TestNormalizeL2(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{"pythagorean", []float32{3, 4}, []float32{0.6, 0.8}},
		{"already unit", []float32{1, 0, 0}, []float32{1, 0, 0}},
		{"negative values", []float32{0, -5}, []float32{0, -1}},
		{"zero vector unchanged", []float32{0, 0, 0}, []float32{0, 0, 0}},
		{"empty", []float32{}, []float32{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := make([]float32, len(tc.input))
			copy(v, tc.input)

			NormalizeL2(v)

			for i := range tc.expected {
				if math.Abs(float64(v[i]-tc.expected[i])) > 0.0001 {
					t.Errorf("NormalizeL2(%v) = %v; want %v", tc.input, v, tc.expected)
					break
				}
			}
		})
	}
}

func TestNormalizeL2UnitLength(t *testing.T) {
	v := []float32{0.3, -1.7, 2.4, 0.01, -0.9, 5.5}

	NormalizeL2(v)

	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if math.Abs(sumSquares-1) > 0.0001 {
		t.Errorf("normalized vector has squared length %f; want 1", sumSquares)
	}
}
