package participants

const (
	queryListEmailsForMeeting = `
		SELECT email
		FROM participants
		WHERE meeting_id = $1
	`

	queryListForMeeting = `
		SELECT id, meeting_id, user_id, email, status, created_at, updated_at
		FROM participants
		WHERE meeting_id = $1
		ORDER BY created_at DESC
	`

	queryUpsertStatus = `
		INSERT INTO participants (meeting_id, email, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (meeting_id, email)
		DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, meeting_id, user_id, email, status, created_at, updated_at
	`
)
