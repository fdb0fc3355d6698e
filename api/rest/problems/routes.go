package problems

import (
	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/auth"
	"github.com/viterhq/server/viter/problems"
)

// registers problem matching routes
func RegisterRoutes(router *gin.RouterGroup, embedder Embedder, problemRepo problems.Repository) {
	router.POST("/problems/match", auth.AuthMiddleware(), MatchHandler(embedder, problemRepo))
}
