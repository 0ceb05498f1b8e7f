package face

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/kozaktomas/face-embedder/internal/config"
	"github.com/kozaktomas/face-embedder/internal/onnx"
)

// Detection is one face found in an image. The box coordinates are
// relative to the source image bounds, in the range [0, 1].
type Detection struct {
	XMin   float32
	YMin   float32
	Width  float32
	Height float32
	Score  float32
}

// Detector locates faces with an SSD-style ONNX model. It owns the model
// session and the anchor grid matching the model's output layout.
type Detector struct {
	session *onnx.Session
	params  config.DetectorParams
	anchors []anchor
}

// NewDetector loads the detection model at path using the tensor layout
// described by params.
func NewDetector(path string, params config.DetectorParams) (*Detector, error) {
	size := int64(params.InputSize)
	count := int64(params.AnchorCount())

	session, err := onnx.New(path,
		onnx.Spec{Name: params.InputName, Shape: []int64{1, size, size, 3}},
		[]onnx.Spec{
			{Name: params.RegressorOutput, Shape: []int64{1, count, int64(params.RegressorWidth)}},
			{Name: params.ScoreOutput, Shape: []int64{1, count, 1}},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading face detector: %w", err)
	}

	return &Detector{
		session: session,
		params:  params,
		anchors: generateAnchors(params.InputSize, params.AnchorLayers),
	}, nil
}

// Detect runs the model over img and returns every accepted detection,
// strongest first. An empty result means no face cleared the score
// threshold.
func (d *Detector) Detect(img image.Image) ([]Detection, error) {
	frame := resizeFrame(img, d.params.InputSize)
	outputs, err := d.session.Run(imageToTensor(frame, d.params.Mean, d.params.Std))
	if err != nil {
		return nil, fmt.Errorf("face detection failed: %w", err)
	}

	candidates := d.decode(outputs[0], outputs[1])
	return nonMaxSuppression(candidates, d.params.IoUThreshold), nil
}

// Close releases the model session.
func (d *Detector) Close() {
	d.session.Close()
}

// decode turns raw model outputs into relative boxes, keeping anchors
// whose score clears the threshold. The regressor predicts center offsets
// and box sizes in input pixels; landmark values beyond the first four are
// ignored.
func (d *Detector) decode(regressors, scores []float32) []Detection {
	var detections []Detection
	size := float32(d.params.InputSize)

	for i, a := range d.anchors {
		score := sigmoid(scores[i])
		if score < d.params.ScoreThreshold {
			continue
		}

		box := regressors[i*d.params.RegressorWidth:]
		cx := a.cx + box[0]/size
		cy := a.cy + box[1]/size
		w := box[2] / size
		h := box[3] / size

		detections = append(detections, Detection{
			XMin:   cx - w/2,
			YMin:   cy - h/2,
			Width:  w,
			Height: h,
			Score:  score,
		})
	}

	return detections
}

// sigmoid maps a raw logit to a probability. Logits are clamped so the
// exponent cannot overflow.
func sigmoid(x float32) float32 {
	clamped := math.Max(-100, math.Min(100, float64(x)))
	return float32(1 / (1 + math.Exp(-clamped)))
}

// nonMaxSuppression greedily keeps the strongest detections, dropping any
// box that overlaps an already kept one beyond the IoU threshold. The
// result stays sorted by score, strongest first.
func nonMaxSuppression(detections []Detection, iouThreshold float32) []Detection {
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Score > detections[j].Score
	})

	var kept []Detection
	for _, candidate := range detections {
		suppressed := false
		for _, winner := range kept {
			if iou(candidate, winner) > iouThreshold {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// iou computes the intersection over union of two relative boxes.
func iou(a, b Detection) float32 {
	x1 := max(a.XMin, b.XMin)
	y1 := max(a.YMin, b.YMin)
	x2 := min(a.XMin+a.Width, b.XMin+b.Width)
	y2 := min(a.YMin+a.Height, b.YMin+b.Height)

	if x2 <= x1 || y2 <= y1 {
		return 0
	}

	intersection := (x2 - x1) * (y2 - y1)
	union := a.Width*a.Height + b.Width*b.Height - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}
