package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kozaktomas/face-embedder/internal/config"
	"github.com/kozaktomas/face-embedder/internal/face"
	"github.com/kozaktomas/face-embedder/internal/onnx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var embedCmd = &cobra.Command{
	Use:   "embed [image]",
	Short: "Compute a face embedding for an image or a directory",
	Long: `Compute face embeddings without running the web server.

A single image prints its embedding as JSON on stdout. With --dir every
image in the directory is processed and one JSON line per image is
written, so the output can be piped into other tools.

Examples:
  # Embed a single image
  face-embedder embed selfie.jpg

  # Embed a whole directory with 4 workers, one JSON line per image
  face-embedder embed --dir ./photos --concurrency 4 > embeddings.jsonl`,
	RunE: runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().String("dir", "", "Process every image in this directory")
	embedCmd.Flags().Int("concurrency", 4, "Number of parallel workers for --dir")
}

// embedRecord is one line of embed output
type embedRecord struct {
	File       string    `json:"file"`
	Embedding  []float32 `json:"embedding,omitempty"`
	Confidence float32   `json:"confidence,omitempty"`
	Dimension  int       `json:"dimension,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// imageExtensions are the file types picked up by --dir.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
}

func runEmbed(cmd *cobra.Command, args []string) error {
	dir := mustGetString(cmd, "dir")
	concurrency := mustGetInt(cmd, "concurrency")

	if dir == "" && len(args) != 1 {
		return fmt.Errorf("provide exactly one image path or --dir")
	}

	cfg := config.Load()
	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer onnx.Destroy()
	defer pipeline.Close()

	if dir == "" {
		return embedSingle(pipeline, args[0])
	}
	return embedDirectory(pipeline, dir, concurrency)
}

func embedSingle(pipeline *face.Pipeline, path string) error {
	record, err := embedFile(pipeline, path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

func embedFile(pipeline *face.Pipeline, path string) (embedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return embedRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := pipeline.FromImage(data)
	if err != nil {
		return embedRecord{}, fmt.Errorf("embedding %s: %w", path, err)
	}

	return embedRecord{
		File:       path,
		Embedding:  result.Embedding,
		Confidence: result.Confidence,
		Dimension:  len(result.Embedding),
	}, nil
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

func embedDirectory(pipeline *face.Pipeline, dir string, concurrency int) error {
	paths, err := listImages(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No images found in %s\n", dir)
		return nil
	}

	// Progress goes to stderr so stdout stays valid JSON lines.
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("Computing embeddings"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	records := make([]embedRecord, len(paths))

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := embedFile(pipeline, path)
			if err != nil {
				record = embedRecord{File: path, Error: err.Error()}
			}
			records[i] = record
			bar.Add(1)
		}(i, path)
	}

	wg.Wait()
	fmt.Fprintln(os.Stderr)

	encoder := json.NewEncoder(os.Stdout)
	var successCount, errorCount int
	for _, record := range records {
		if record.Error != "" {
			errorCount++
		} else {
			successCount++
		}
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Completed: %d successful, %d errors\n", successCount, errorCount)
	return nil
}
