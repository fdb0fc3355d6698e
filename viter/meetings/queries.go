package meetings

const (
	queryFindByNanoID = `
		SELECT id, nano_id, title, status, created_by, scheduled_at, started_at, ended_at, created_at, updated_at
		FROM meetings
		WHERE nano_id = $1
	`

	queryMarkStarted = `
		UPDATE meetings
		SET status = 'LIVE', started_at = NOW(), updated_at = NOW()
		WHERE nano_id = $1
	`

	queryMarkEnded = `
		UPDATE meetings
		SET status = 'END', ended_at = NOW(), updated_at = NOW()
		WHERE nano_id = $1
	`
)
