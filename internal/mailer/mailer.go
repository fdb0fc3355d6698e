package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	resendEmailsURL = "https://api.resend.com/emails"
	defaultFrom     = "Viter <onboarding@resend.dev>"
)

// shared HTTP client for Resend API calls
// reuses connection pool and timeout configuration
var resendHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// creates a Resend mail client
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is empty")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    resendEmailsURL,
		from:       defaultFrom,
		httpClient: resendHTTPClient,
	}, nil
}

// creates a client pointed at a custom endpoint, used in tests
func NewWithBaseURL(apiKey, baseURL string) (*Client, error) {
	client, err := New(apiKey)
	if err != nil {
		return nil, err
	}

	client.baseURL = baseURL
	return client, nil
}

// sends a single email, returning the provider message id
func (c *Client) Send(ctx context.Context, email Email) (string, error) {
	reqBody := sendRequest{
		From:    c.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var sendResp sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return sendResp.ID, nil
}
