package invites

import (
	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/auth"
	"github.com/viterhq/server/internal/invite"
	"github.com/viterhq/server/internal/mailer"
)

// registers invitation routes.
// rateLimit guards both endpoints against invite spam and token brute force.
func RegisterRoutes(router *gin.RouterGroup, codec *invite.Codec, mail *mailer.Client, baseURL string, rateLimit gin.HandlerFunc) {
	router.POST("/invite", rateLimit, auth.AuthMiddleware(), SendInvitesHandler(codec, mail, baseURL))
	router.POST("/validate-participant", rateLimit, ValidateParticipantHandler(codec))
}
