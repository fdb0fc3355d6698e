package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	inviteSecret := os.Getenv("INVITE_SECRET")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	resendKey := os.Getenv("RESEND_API_KEY")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	// invite tokens are signed with their own secret so a leaked invite
	// key cannot be used to forge identity tokens
	if inviteSecret == "" {
		return nil, fmt.Errorf("INVITE_SECRET environment variable is required")
	}

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if resendKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:  databaseURL,
		JWTSecret:    jwtSecret,
		InviteSecret: inviteSecret,
		OpenAIKey:    openaiKey,
		ResendKey:    resendKey,
		BaseURL:      baseURL,
		Environment:  environment,
	}, nil
}
