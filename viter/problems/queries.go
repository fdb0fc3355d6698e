package problems

const (
	// match_problems is a Postgres function doing cosine similarity over
	// the problems.embedding pgvector column
	queryMatchProblems = `
		SELECT
			id::text,
			title,
			difficulty,
			description,
			similarity
		FROM match_problems($1, $2, $3)
	`
)
