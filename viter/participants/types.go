package participants

import (
	"context"
	"time"
)

// participant invitation states
const (
	StatusInvited  = "INVITED"
	StatusAccepted = "ACCEPTED"
	StatusDeclined = "DECLINED"
)

// repository interface for participant database operations
type Repository interface {
	ListEmailsForMeeting(ctx context.Context, meetingID string) ([]string, error)
	ListForMeeting(ctx context.Context, meetingID string) ([]*Participant, error)
	UpsertStatus(ctx context.Context, meetingID, email, status string) (*Participant, error)
}

// represents an invited attendee of a meeting
type Participant struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	UserID    *string   `json:"user_id,omitempty"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
