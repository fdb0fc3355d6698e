package notifications

// MeetingReminderRequest asks for a reminder to every participant of a meeting
type MeetingReminderRequest struct {
	MeetingID  string `json:"meetingId" binding:"required"`
	OccurredAt string `json:"occurredAt" binding:"required"`
}

// MeetingReminderResponse reports how many reminders went out
type MeetingReminderResponse struct {
	Sent int `json:"sent"`
}
