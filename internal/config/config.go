package config

import (
	_ "embed"
	"os"
	"strconv"

	"github.com/kozaktomas/face-embedder/internal/constants"
	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var modelsYAML []byte

type Config struct {
	Models  ModelsConfig
	ONNX    ONNXConfig
	Catalog CatalogConfig
}

type ModelsConfig struct {
	DetectorPath   string // path to the face detector ONNX file
	EmbedderPath   string // path to the face embedding ONNX file
	ProjectionPath string // path to the projection model JSON file
	CropMargin     int    // pixel margin added around detected faces before cropping
}

type ONNXConfig struct {
	SharedLibrary string // optional path to the ONNX Runtime shared library (empty = loader default)
}

// CatalogConfig describes the models the pipeline loads. It is read from the
// embedded models.yaml and is fixed per build.
type CatalogConfig struct {
	Detector DetectorParams `yaml:"detector"`
	Embedder EmbedderParams `yaml:"embedder"`
}

// DetectorParams are the tensor names, input geometry and post-processing
// thresholds of the face detector model.
type DetectorParams struct {
	InputName       string        `yaml:"input_name"`
	RegressorOutput string        `yaml:"regressor_output"`
	ScoreOutput     string        `yaml:"score_output"`
	InputSize       int           `yaml:"input_size"`
	RegressorWidth  int           `yaml:"regressor_width"` // values per anchor in the regressor output
	ScoreThreshold  float32       `yaml:"score_threshold"`
	IoUThreshold    float32       `yaml:"iou_threshold"`
	Mean            float32       `yaml:"mean"`
	Std             float32       `yaml:"std"`
	AnchorLayers    []AnchorLayer `yaml:"anchor_layers"`
}

// AnchorLayer describes one SSD anchor layer: the stride of its feature map
// on the input image and the number of anchors placed in every cell.
type AnchorLayer struct {
	Stride         int `yaml:"stride"`
	AnchorsPerCell int `yaml:"anchors_per_cell"`
}

// EmbedderParams are the tensor names, input geometry and pixel normalization
// of the face embedding model.
type EmbedderParams struct {
	InputName  string  `yaml:"input_name"`
	OutputName string  `yaml:"output_name"`
	InputSize  int     `yaml:"input_size"`
	OutputDim  int     `yaml:"output_dim"`
	Mean       float32 `yaml:"mean"`
	Std        float32 `yaml:"std"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable, falling back to a default when unset.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var catalog CatalogConfig
	if err := yaml.Unmarshal(modelsYAML, &catalog); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded models.yaml: " + err.Error())
	}

	return &Config{
		Models: ModelsConfig{
			DetectorPath:   envString("FACE_DETECTOR_MODEL", "models/face_detector.onnx"),
			EmbedderPath:   envString("FACE_EMBEDDING_MODEL", "models/facenet_128.onnx"),
			ProjectionPath: envString("PROJECTION_MODEL", "pca_model_64d.json"),
			CropMargin:     envInt("FACE_CROP_MARGIN", constants.DefaultCropMargin),
		},
		ONNX: ONNXConfig{
			SharedLibrary: os.Getenv("ONNXRUNTIME_LIB"),
		},
		Catalog: catalog,
	}
}

// AnchorCount returns the total number of anchors the detector emits,
// derived from the anchor layer layout.
func (d *DetectorParams) AnchorCount() int {
	total := 0
	for _, layer := range d.AnchorLayers {
		cells := d.InputSize / layer.Stride
		total += cells * cells * layer.AnchorsPerCell
	}
	return total
}
