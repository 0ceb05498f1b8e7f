package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/face-embedder/internal/face"
)

// CompareRequest carries the two embeddings to compare. Pointer fields
// distinguish a missing key from an empty embedding.
type CompareRequest struct {
	FaceLogin *[]float64 `json:"face_login"`
	FaceReg   *[]float64 `json:"face_reg"`
}

// CompareResponse represents the similarity verdict for two embeddings
type CompareResponse struct {
	CosineSimilarity   float64 `json:"cosine_similarity"`
	EuclideanDistance  float64 `json:"euclidean_distance"`
	IsSamePerson       bool    `json:"is_same_person"`
	Confidence         float64 `json:"confidence"`
	EmbeddingDimension int     `json:"embedding_dimension"`
}

// parseCompareRequest parses and validates a compare request, returning an
// error message if invalid
func parseCompareRequest(r *http.Request) (CompareRequest, string) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errInvalidRequestBody
	}
	if req.FaceLogin == nil {
		return req, "Missing key: 'face_login'"
	}
	if req.FaceReg == nil {
		return req, "Missing key: 'face_reg'"
	}
	return req, ""
}

// CompareEmbeddings compares two face embeddings and reports whether they
// belong to the same person.
func CompareEmbeddings(w http.ResponseWriter, r *http.Request) {
	req, errMsg := parseCompareRequest(r)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	comparison, err := face.Compare(*req.FaceLogin, *req.FaceReg)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CompareResponse{
		CosineSimilarity:   comparison.CosineSimilarity,
		EuclideanDistance:  comparison.EuclideanDistance,
		IsSamePerson:       comparison.IsSamePerson,
		Confidence:         comparison.Confidence,
		EmbeddingDimension: comparison.Dimension,
	})
}
