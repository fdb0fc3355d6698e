package webhooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/errors"
	"github.com/viterhq/server/internal/logger"
	"github.com/viterhq/server/viter/meetings"
)

// VideoEventHandler godoc
// @Summary Video provider webhook
// @Description Applies call lifecycle events to the backing meeting row
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body VideoEvent true "Provider event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /webhooks/video [post]
func VideoEventHandler(meetingRepo meetings.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event VideoEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			errors.ValidationError(c, err)
			return
		}

		logger.Info("video event received", "type", event.Type, "call_id", event.Call.ID)

		switch event.Type {
		case EventCallStarted:
			if event.Call.ID == "" {
				errors.BadRequest(c, "call id is required", nil)
				return
			}

			if err := meetingRepo.MarkStarted(c.Request.Context(), event.Call.ID); err != nil {
				errors.InternalError(c, "failed to mark meeting started", err)
				return
			}

			c.JSON(http.StatusOK, gin.H{"message": "Meeting started"})
		case EventCallEnded:
			if event.Call.ID == "" {
				errors.BadRequest(c, "call id is required", nil)
				return
			}

			if err := meetingRepo.MarkEnded(c.Request.Context(), event.Call.ID); err != nil {
				errors.InternalError(c, "failed to mark meeting ended", err)
				return
			}

			c.JSON(http.StatusOK, gin.H{"message": "Meeting ended"})
		default:
			// acknowledge events we do not act on so the provider stops retrying
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		}
	}
}
