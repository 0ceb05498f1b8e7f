package onnx

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Spec describes a single model tensor by name and shape.
type Spec struct {
	Name  string
	Shape []int64
}

// Session is a loaded ONNX model with pre-allocated input and output
// tensors. The tensors are bound to the session and reused across calls,
// so Run serializes access with a mutex. A Session is safe for concurrent
// use by multiple goroutines.
type Session struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	outputs []*ort.Tensor[float32]
}

// New loads the model at modelPath and binds fixed-shape tensors for the
// given input and outputs. The runtime environment must be initialized
// before the first call.
func New(modelPath string, input Spec, outputs []Spec) (*Session, error) {
	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(input.Shape...))
	if err != nil {
		return nil, fmt.Errorf("creating input tensor: %w", err)
	}

	outputNames := make([]string, 0, len(outputs))
	outputTensors := make([]*ort.Tensor[float32], 0, len(outputs))
	for _, out := range outputs {
		tensor, err := ort.NewEmptyTensor[float32](ort.NewShape(out.Shape...))
		if err != nil {
			inputTensor.Destroy()
			for _, created := range outputTensors {
				created.Destroy()
			}
			return nil, fmt.Errorf("creating output tensor %q: %w", out.Name, err)
		}
		outputNames = append(outputNames, out.Name)
		outputTensors = append(outputTensors, tensor)
	}

	arbitraryOutputs := make([]ort.ArbitraryTensor, len(outputTensors))
	for i, tensor := range outputTensors {
		arbitraryOutputs[i] = tensor
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{input.Name},
		outputNames,
		[]ort.ArbitraryTensor{inputTensor},
		arbitraryOutputs,
		nil,
	)
	if err != nil {
		inputTensor.Destroy()
		for _, tensor := range outputTensors {
			tensor.Destroy()
		}
		return nil, fmt.Errorf("loading model %s: %w", modelPath, err)
	}

	return &Session{
		session: session,
		input:   inputTensor,
		outputs: outputTensors,
	}, nil
}

// Run copies data into the input tensor, executes the model and returns
// a copy of every output tensor in declaration order.
func (s *Session) Run(data []float32) ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buffer := s.input.GetData()
	if len(data) != len(buffer) {
		return nil, fmt.Errorf("input size mismatch: got %d values, tensor holds %d", len(data), len(buffer))
	}
	copy(buffer, data)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}

	results := make([][]float32, len(s.outputs))
	for i, output := range s.outputs {
		values := output.GetData()
		results[i] = make([]float32, len(values))
		copy(results[i], values)
	}
	return results, nil
}

// Close releases the session and its bound tensors.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.input != nil {
		s.input.Destroy()
		s.input = nil
	}
	for _, output := range s.outputs {
		output.Destroy()
	}
	s.outputs = nil
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
}
