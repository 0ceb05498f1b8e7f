package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "face-embedder",
	Short: "A face embedding service for login verification",
	Long: `Face Embedder locates a face in an image, turns it into a compact
embedding vector and compares embeddings to decide whether two images
show the same person. The detection and embedding models run locally
through ONNX Runtime.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
