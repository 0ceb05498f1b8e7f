package face

import (
	"fmt"
	"image"

	"github.com/kozaktomas/face-embedder/internal/config"
	"github.com/kozaktomas/face-embedder/internal/onnx"
	"github.com/nfnt/resize"
)

// Embedder turns a face crop into a raw embedding vector. The crop is
// embedded as-is; face detection must have happened already.
type Embedder struct {
	session *onnx.Session
	params  config.EmbedderParams
}

// NewEmbedder loads the embedding model at path using the tensor layout
// described by params.
func NewEmbedder(path string, params config.EmbedderParams) (*Embedder, error) {
	size := int64(params.InputSize)

	session, err := onnx.New(path,
		onnx.Spec{Name: params.InputName, Shape: []int64{1, size, size, 3}},
		[]onnx.Spec{
			{Name: params.OutputName, Shape: []int64{1, int64(params.OutputDim)}},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading embedding model: %w", err)
	}

	return &Embedder{session: session, params: params}, nil
}

// Embed scales a face crop to the model input and returns the raw
// embedding vector.
func (e *Embedder) Embed(crop image.Image) ([]float32, error) {
	size := uint(e.params.InputSize)
	scaled := resize.Resize(size, size, crop, resize.Lanczos3)

	outputs, err := e.session.Run(imageToTensor(toRGBA(scaled), e.params.Mean, e.params.Std))
	if err != nil {
		return nil, fmt.Errorf("embedding inference failed: %w", err)
	}

	return outputs[0], nil
}

// Close releases the model session.
func (e *Embedder) Close() {
	e.session.Close()
}
