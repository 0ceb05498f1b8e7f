package face

import "github.com/kozaktomas/face-embedder/internal/config"

// anchor is the center of one SSD prior box, relative to the detector
// input frame.
type anchor struct {
	cx float32
	cy float32
}

// generateAnchors builds the prior grid for an SSD detector. Each layer
// covers the input with a square grid of cells (input size divided by the
// layer stride) and places its anchors at every cell center. The order
// matches the flattened model output.
func generateAnchors(inputSize int, layers []config.AnchorLayer) []anchor {
	var anchors []anchor
	for _, layer := range layers {
		cells := inputSize / layer.Stride
		for row := 0; row < cells; row++ {
			for col := 0; col < cells; col++ {
				cx := (float32(col) + 0.5) / float32(cells)
				cy := (float32(row) + 0.5) / float32(cells)
				for n := 0; n < layer.AnchorsPerCell; n++ {
					anchors = append(anchors, anchor{cx: cx, cy: cy})
				}
			}
		}
	}
	return anchors
}
