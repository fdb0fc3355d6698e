package invites

// ValidateParticipantRequest is the body of the confirmation endpoint
type ValidateParticipantRequest struct {
	InviteCode string `json:"inviteCode"`
}

// ValidateParticipantResponse echoes the claims embedded in the invite
type ValidateParticipantResponse struct {
	Participant string `json:"participant"`
	MeetingID   string `json:"meetingId"`
}

// SendInvitesRequest is the request to invite participants to a meeting
type SendInvitesRequest struct {
	Title        string   `json:"title" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	MeetingID    string   `json:"meetingId" binding:"required"`
	Participants []string `json:"participants" binding:"required,min=1,dive,email"`
}

// SendInvitesResponse confirms all invitation emails were sent
type SendInvitesResponse struct {
	Message string `json:"message"`
}
