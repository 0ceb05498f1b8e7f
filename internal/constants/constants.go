// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Face comparison constants
const (
	// CosineThreshold is the minimum cosine similarity for two embeddings
	// to be considered the same person. The decision is strict: similarity
	// must exceed the threshold, equality is not enough.
	CosineThreshold = 0.50

	// EuclideanThreshold is the maximum Euclidean distance between two
	// embeddings of the same person. The distance is reported in comparison
	// results but the same-person decision consults cosine similarity alone.
	EuclideanThreshold = 1.0
)

// Face cropping constants
const (
	// DefaultCropMargin is the number of pixels added on every side of a
	// detected face box before cropping, clamped to the image bounds.
	DefaultCropMargin = 20
)

// Upload constants
const (
	// MaxUploadMemory is the memory threshold for multipart form parsing.
	// Larger uploads spill to temporary files; this is not a size limit.
	MaxUploadMemory = 32 << 20
)
