package cmd

import (
	"github.com/kozaktomas/face-embedder/internal/config"
	"github.com/kozaktomas/face-embedder/internal/face"
	"github.com/kozaktomas/face-embedder/internal/onnx"
)

// newPipeline initializes the ONNX runtime and loads all models. The
// caller owns the returned pipeline and must close it before tearing the
// runtime down with onnx.Destroy.
func newPipeline(cfg *config.Config) (*face.Pipeline, error) {
	if err := onnx.Init(cfg.ONNX.SharedLibrary); err != nil {
		return nil, err
	}

	pipeline, err := face.NewPipeline(cfg)
	if err != nil {
		onnx.Destroy()
		return nil, err
	}
	return pipeline, nil
}
