package face

// Result is a successfully extracted face embedding together with the
// detector's confidence in the underlying face.
type Result struct {
	Embedding  []float32
	Confidence float32
}

// Extractor produces a face embedding from an encoded image.
// Implementations must be safe for concurrent use.
type Extractor interface {
	FromImage(data []byte) (Result, error)
}
