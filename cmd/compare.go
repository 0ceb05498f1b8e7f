package cmd

import (
	"encoding/json"
	"os"

	"github.com/kozaktomas/face-embedder/internal/config"
	"github.com/kozaktomas/face-embedder/internal/face"
	"github.com/kozaktomas/face-embedder/internal/onnx"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <image-a> <image-b>",
	Short: "Compare the faces in two images",
	Long: `Embed the face in each image and report whether they belong to the
same person. The verdict and both similarity measures are printed as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer onnx.Destroy()
	defer pipeline.Close()

	first, err := embedFile(pipeline, args[0])
	if err != nil {
		return err
	}
	second, err := embedFile(pipeline, args[1])
	if err != nil {
		return err
	}

	comparison, err := face.Compare(toFloat64(first.Embedding), toFloat64(second.Embedding))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"cosine_similarity":   comparison.CosineSimilarity,
		"euclidean_distance":  comparison.EuclideanDistance,
		"is_same_person":      comparison.IsSamePerson,
		"confidence":          comparison.Confidence,
		"embedding_dimension": comparison.Dimension,
	})
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
