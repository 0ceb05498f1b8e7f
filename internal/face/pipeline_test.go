package face

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/face-embedder/internal/config"
)

func TestPipelineFromImageInvalidData(t *testing.T) {
	// Decoding fails before any model is consulted, so an empty pipeline
	// is enough.
	p := &Pipeline{}

	_, err := p.FromImage([]byte("not an image"))
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("FromImage returned %v; want ErrInvalidImage", err)
	}
	if err.Error() != "Invalid image" {
		t.Errorf("error text %q; want %q", err.Error(), "Invalid image")
	}
}

func TestErrorTexts(t *testing.T) {
	// These strings are part of the HTTP contract and must not drift.
	if ErrInvalidImage.Error() != "Invalid image" {
		t.Errorf("ErrInvalidImage = %q; want %q", ErrInvalidImage.Error(), "Invalid image")
	}
	if ErrNoFace.Error() != "No face detected" {
		t.Errorf("ErrNoFace = %q; want %q", ErrNoFace.Error(), "No face detected")
	}
}

func TestNewPipelineMissingProjection(t *testing.T) {
	cfg := config.Load()
	cfg.Models.ProjectionPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewPipeline(cfg)
	if err == nil {
		t.Fatal("NewPipeline should fail when the projection model is missing")
	}
}
