// Package onnx wraps the ONNX Runtime bindings behind a small session API.
// The runtime environment is process-wide: Init must be called once before
// any session is created and Destroy once after all sessions are closed.
package onnx

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// Init initializes the ONNX Runtime environment. When sharedLibrary is
// non-empty it points the loader at a specific onnxruntime shared library;
// otherwise the platform default is used. Calling Init twice is a no-op.
func Init(sharedLibrary string) error {
	if ort.IsInitialized() {
		return nil
	}
	if sharedLibrary != "" {
		ort.SetSharedLibraryPath(sharedLibrary)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initializing ONNX runtime: %w", err)
	}
	return nil
}

// Destroy tears down the ONNX Runtime environment. All sessions must be
// closed first.
func Destroy() {
	if ort.IsInitialized() {
		ort.DestroyEnvironment()
	}
}
