package embeddings

import "net/http"

type Config struct {
	APIKey string
	Model  string // e.g., "text-embedding-ada-002"
}

// generates text embeddings through the OpenAI API
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

type embeddingRequest struct {
	Input    []string `json:"input"`
	Model    string   `json:"model"`
	Encoding string   `json:"encoding_format"`
}

type embeddingResponse struct {
	Object string `json:"object"`
	Data   []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}
