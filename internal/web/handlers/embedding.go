package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/kozaktomas/face-embedder/internal/constants"
	"github.com/kozaktomas/face-embedder/internal/face"
)

// EmbeddingResponse represents an extracted face embedding
type EmbeddingResponse struct {
	Embedding  []float32 `json:"embedding"`
	Confidence float32   `json:"confidence"`
	Dimension  int       `json:"dimension"`
}

// EmbeddingHandler handles embedding extraction endpoints.
type EmbeddingHandler struct {
	extractor face.Extractor
}

// NewEmbeddingHandler creates a new embedding handler.
func NewEmbeddingHandler(extractor face.Extractor) *EmbeddingHandler {
	return &EmbeddingHandler{extractor: extractor}
}

// GetEmbedding extracts a face embedding from an uploaded image. The image
// is processed entirely in memory; any failure is reported as 400 with the
// reason in the detail field.
func (h *EmbeddingHandler) GetEmbedding(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := h.extractor.FromImage(data)
	if err != nil {
		log.Printf("Embedding extraction failed for %s: %v", sanitizeForLog(header.Filename), err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, EmbeddingResponse{
		Embedding:  result.Embedding,
		Confidence: result.Confidence,
		Dimension:  len(result.Embedding),
	})
}
