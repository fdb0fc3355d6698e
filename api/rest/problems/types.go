package problems

import "context"

// generates an embedding for free text, satisfied by embeddings.Client
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// MatchRequest carries the text to match problems against
type MatchRequest struct {
	Text string `json:"text" binding:"required"`
}
