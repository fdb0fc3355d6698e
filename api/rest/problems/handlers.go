package problems

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viterhq/server/internal/errors"
	"github.com/viterhq/server/viter/problems"
)

const (
	matchThreshold = 0.5
	matchCount     = 5
)

// MatchHandler godoc
// @Summary Match interview problems
// @Description Embeds the given text and returns the most similar problems
// @Tags problems
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Text to match"
// @Success 200 {array} problems.MatchResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/problems/match [post]
// @Security BearerAuth
func MatchHandler(embedder Embedder, problemRepo problems.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		embedding, err := embedder.GenerateEmbedding(c.Request.Context(), req.Text)
		if err != nil {
			errors.InternalError(c, "failed to generate embedding", err)
			return
		}

		results, err := problemRepo.Match(c.Request.Context(), embedding, matchThreshold, matchCount)
		if err != nil {
			errors.InternalError(c, "failed to match problems", err)
			return
		}

		if results == nil {
			results = []problems.MatchResult{}
		}

		c.JSON(http.StatusOK, results)
	}
}
