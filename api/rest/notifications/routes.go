package notifications

import (
	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/auth"
	"github.com/viterhq/server/internal/mailer"
	"github.com/viterhq/server/viter/participants"
)

// registers notification routes
func RegisterRoutes(router *gin.RouterGroup, participantRepo participants.Repository, mail *mailer.Client) {
	router.POST("/notifications/meeting-reminder", auth.AuthMiddleware(), MeetingReminderHandler(participantRepo, mail))
}
