package main

import (
	"fmt"

	"github.com/viterhq/server/internal/config"
	"github.com/viterhq/server/internal/embeddings"
	"github.com/viterhq/server/internal/invite"
	"github.com/viterhq/server/internal/mailer"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	codec, err := invite.New(cfg.InviteSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite codec: %w", err)
	}

	mailClient, err := mailer.New(cfg.ResendKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	embedder := embeddings.New(embeddings.Config{APIKey: cfg.OpenAIKey})

	return &Services{
		InviteCodec: codec,
		Mailer:      mailClient,
		Embedder:    embedder,
	}, nil
}
