package webhooks

import (
	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/viter/meetings"
)

// registers webhook routes.
// the video provider signs requests at the network edge, so no bearer auth here.
func RegisterRoutes(router *gin.RouterGroup, meetingRepo meetings.Repository) {
	router.POST("/webhooks/video", VideoEventHandler(meetingRepo))
}
