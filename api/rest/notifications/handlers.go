package notifications

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/errors"
	"github.com/viterhq/server/internal/logger"
	"github.com/viterhq/server/internal/mailer"
	"github.com/viterhq/server/viter/participants"
)

// MeetingReminderHandler godoc
// @Summary Send meeting reminders
// @Description Emails every participant of a meeting a reminder
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body MeetingReminderRequest true "Meeting reference"
// @Success 200 {object} MeetingReminderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/notifications/meeting-reminder [post]
// @Security BearerAuth
func MeetingReminderHandler(participantRepo participants.Repository, mail *mailer.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MeetingReminderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		emails, err := participantRepo.ListEmailsForMeeting(c.Request.Context(), req.MeetingID)
		if err != nil {
			errors.InternalError(c, "failed to fetch participants", err)
			return
		}

		message := fmt.Sprintf("Meeting %s occurred at %s", req.MeetingID, req.OccurredAt)
		sent := 0

		for _, email := range emails {
			_, err := mail.Send(c.Request.Context(), mailer.Email{
				To:      email,
				Subject: "Meeting Reminder",
				HTML:    message,
			})
			if err != nil {
				// keep going, one bad address should not block the rest
				logger.ErrorErr(err, "failed to send reminder", "email", email, "meeting_id", req.MeetingID)
				continue
			}

			sent++
		}

		c.JSON(http.StatusOK, MeetingReminderResponse{Sent: sent})
	}
}
