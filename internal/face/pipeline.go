// Package face implements the face embedding pipeline: locating the face
// in an image, cropping it, running the embedding model and projecting the
// result into the reduced comparison space.
package face

import (
	"errors"
	"fmt"

	"github.com/kozaktomas/face-embedder/internal/config"
)

// Sentinel errors whose text is returned verbatim to API clients.
var (
	ErrInvalidImage = errors.New("Invalid image")
	ErrNoFace       = errors.New("No face detected")
)

// Pipeline wires the face detector, the embedding model and the projection
// into a single extractor. It is built once at startup and shared
// read-only by every request.
type Pipeline struct {
	detector   *Detector
	embedder   *Embedder
	projection *Projection
	margin     int
}

// NewPipeline loads every model referenced by the configuration and
// returns a ready extractor. A missing or unreadable model fails the whole
// pipeline.
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	projection, err := LoadProjection(cfg.Models.ProjectionPath)
	if err != nil {
		return nil, err
	}

	detector, err := NewDetector(cfg.Models.DetectorPath, cfg.Catalog.Detector)
	if err != nil {
		return nil, err
	}

	embedder, err := NewEmbedder(cfg.Models.EmbedderPath, cfg.Catalog.Embedder)
	if err != nil {
		detector.Close()
		return nil, err
	}

	if projection.InputDim() != cfg.Catalog.Embedder.OutputDim {
		detector.Close()
		embedder.Close()
		return nil, fmt.Errorf("projection model expects %d-dimensional input, embedding model produces %d",
			projection.InputDim(), cfg.Catalog.Embedder.OutputDim)
	}

	return &Pipeline{
		detector:   detector,
		embedder:   embedder,
		projection: projection,
		margin:     cfg.Models.CropMargin,
	}, nil
}

// FromImage decodes an encoded image, locates the most confident face and
// returns its projected, unit-length embedding. When several faces are
// found only the strongest detection is embedded.
func (p *Pipeline) FromImage(data []byte) (Result, error) {
	img, err := decodeImage(data)
	if err != nil {
		return Result{}, ErrInvalidImage
	}

	detections, err := p.detector.Detect(img)
	if err != nil {
		return Result{}, err
	}
	if len(detections) == 0 {
		return Result{}, ErrNoFace
	}
	best := detections[0]

	crop, err := cropFace(img, best, p.margin)
	if err != nil {
		return Result{}, err
	}

	raw, err := p.embedder.Embed(crop)
	if err != nil {
		return Result{}, err
	}
	NormalizeL2(raw)

	projected, err := p.projection.Apply(raw)
	if err != nil {
		return Result{}, err
	}
	NormalizeL2(projected)

	return Result{Embedding: projected, Confidence: best.Score}, nil
}

// Close releases the model sessions.
func (p *Pipeline) Close() {
	p.detector.Close()
	p.embedder.Close()
}
