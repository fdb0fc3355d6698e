package meetings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repository struct {
	db *pgxpool.Pool
}

// creates a new meeting repository
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// finds a meeting by its public nano id
func (r *repository) FindByNanoID(ctx context.Context, nanoID string) (*Meeting, error) {
	var meeting Meeting

	err := r.db.QueryRow(ctx, queryFindByNanoID, nanoID).Scan(
		&meeting.ID,
		&meeting.NanoID,
		&meeting.Title,
		&meeting.Status,
		&meeting.CreatedBy,
		&meeting.ScheduledAt,
		&meeting.StartedAt,
		&meeting.EndedAt,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &meeting, nil
}

// transitions a meeting to LIVE and records the start time
func (r *repository) MarkStarted(ctx context.Context, nanoID string) error {
	tag, err := r.db.Exec(ctx, queryMarkStarted, nanoID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// transitions a meeting to END and records the end time
func (r *repository) MarkEnded(ctx context.Context, nanoID string) error {
	tag, err := r.db.Exec(ctx, queryMarkEnded, nanoID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
