package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viterhq/server/internal/config"
	"github.com/viterhq/server/internal/embeddings"
	"github.com/viterhq/server/internal/invite"
	"github.com/viterhq/server/internal/mailer"
	"github.com/viterhq/server/viter/meetings"
	"github.com/viterhq/server/viter/participants"
	"github.com/viterhq/server/viter/problems"
	"github.com/viterhq/server/viter/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db              *pgxpool.Pool
	config          *config.Config
	userRepo        *users.Repository
	meetingRepo     meetings.Repository
	participantRepo participants.Repository
	problemRepo     problems.Repository
	services        *Services
	router          *gin.Engine
}

// holds all external service clients (invite codec, mail, embeddings)
type Services struct {
	InviteCodec *invite.Codec
	Mailer      *mailer.Client
	Embedder    *embeddings.Client
}
