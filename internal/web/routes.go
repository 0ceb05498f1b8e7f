package web

import (
	"github.com/kozaktomas/face-embedder/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	embeddingHandler := handlers.NewEmbeddingHandler(s.extractor)

	// Health check
	s.router.Get("/health", handlers.HealthCheck)

	// Embedding API. The paths live at the root so existing clients keep
	// working unchanged.
	s.router.Post("/get-embedding", embeddingHandler.GetEmbedding)
	s.router.Post("/compare-embeddings", handlers.CompareEmbeddings)
}
