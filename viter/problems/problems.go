package problems

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

type repository struct {
	db *pgxpool.Pool
}

// creates a new problem repository
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// finds the problems most similar to the query embedding
func (r *repository) Match(ctx context.Context, embedding []float32, threshold float32, count int) ([]MatchResult, error) {
	rows, err := r.db.Query(ctx, queryMatchProblems, pgvector.NewVector(embedding), threshold, count)
	if err != nil {
		return nil, fmt.Errorf("failed to execute match query: %w", err)
	}

	defer rows.Close()

	var results []MatchResult

	for rows.Next() {
		var result MatchResult

		err := rows.Scan(
			&result.ID,
			&result.Title,
			&result.Difficulty,
			&result.Description,
			&result.Similarity,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}
