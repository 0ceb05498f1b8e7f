package face

import (
	"fmt"
	"math"

	"github.com/kozaktomas/face-embedder/internal/constants"
)

// Comparison holds the similarity measures between two face embeddings.
type Comparison struct {
	CosineSimilarity  float64
	EuclideanDistance float64
	IsSamePerson      bool
	Confidence        float64
	Dimension         int
}

// Compare computes the similarity between two embeddings of equal length.
// The embeddings are stored unit-normalized, so cosine similarity reduces
// to a plain dot product. The same-person verdict consults the cosine
// threshold alone; the Euclidean distance is reported for clients that
// want it.
func Compare(a, b []float64) (Comparison, error) {
	if len(a) != len(b) {
		return Comparison{}, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, distSquared float64
	for i := range a {
		dot += a[i] * b[i]
		d := a[i] - b[i]
		distSquared += d * d
	}

	return Comparison{
		CosineSimilarity:  dot,
		EuclideanDistance: math.Sqrt(distSquared),
		IsSamePerson:      dot > constants.CosineThreshold,
		Confidence:        dot,
		Dimension:         len(a),
	}, nil
}
