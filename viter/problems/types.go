package problems

import (
	"context"
)

// repository interface for problem matching
type Repository interface {
	Match(ctx context.Context, embedding []float32, threshold float32, count int) ([]MatchResult, error)
}

// an interview problem ranked by similarity to a query embedding
type MatchResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Difficulty  string  `json:"difficulty"`
	Description string  `json:"description"`
	Similarity  float32 `json:"similarity"`
}
