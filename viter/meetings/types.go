package meetings

import (
	"context"
	"time"
)

// meeting lifecycle states (must match DB check constraint)
const (
	StatusUpcoming = "UPCOMING"
	StatusLive     = "LIVE"
	StatusEnded    = "END"
)

// repository interface for meeting database operations
type Repository interface {
	FindByNanoID(ctx context.Context, nanoID string) (*Meeting, error)
	MarkStarted(ctx context.Context, nanoID string) error
	MarkEnded(ctx context.Context, nanoID string) error
}

// represents a scheduled video interview
type Meeting struct {
	ID          string     `json:"id"`
	NanoID      string     `json:"nano_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"created_by"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
