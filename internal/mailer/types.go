package mailer

import "net/http"

// sends transactional email through the Resend HTTP API
type Client struct {
	apiKey     string
	baseURL    string
	from       string
	httpClient *http.Client
}

// a single outbound message
type Email struct {
	To      string
	Subject string
	HTML    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}
