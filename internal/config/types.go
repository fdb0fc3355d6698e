package config

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	InviteSecret string
	OpenAIKey    string
	ResendKey    string
	BaseURL      string
	Environment  string
}
