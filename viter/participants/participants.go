package participants

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repository struct {
	db *pgxpool.Pool
}

// creates a new participant repository
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// lists the email addresses invited to a meeting
func (r *repository) ListEmailsForMeeting(ctx context.Context, meetingID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListEmailsForMeeting, meetingID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var emails []string

	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}

		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}

// lists all participants of a meeting
func (r *repository) ListForMeeting(ctx context.Context, meetingID string) ([]*Participant, error) {
	rows, err := r.db.Query(ctx, queryListForMeeting, meetingID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []*Participant

	for rows.Next() {
		var p Participant

		err := rows.Scan(
			&p.ID,
			&p.MeetingID,
			&p.UserID,
			&p.Email,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// records or updates a participant's invitation status for a meeting
func (r *repository) UpsertStatus(ctx context.Context, meetingID, email, status string) (*Participant, error) {
	var p Participant

	err := r.db.QueryRow(ctx, queryUpsertStatus, meetingID, email, status).Scan(
		&p.ID,
		&p.MeetingID,
		&p.UserID,
		&p.Email,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &p, nil
}
