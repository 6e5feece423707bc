// Package gemini is a minimal client for Google's generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Roles used in request contents. The API expects "model", not "assistant".
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Client issues generateContent requests for a single model.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL overrides the endpoint, used by tests and proxies.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Generate sends one request and returns the first candidate's text.
// No retries: a failed turn surfaces as exactly one error in the chat.
func (c *Client) Generate(ctx context.Context, contents []Content) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, data)
	}

	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", ErrMalformedResponse)
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

func classifyStatus(status int, body []byte) error {
	detail := apiErrorMessage(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, status)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (HTTP %d)", ErrQuotaExceeded, status)
	}

	if detail != "" {
		return &NetworkError{Err: fmt.Errorf("API request failed (HTTP %d): %s", status, detail)}
	}
	return &NetworkError{Err: fmt.Errorf("API request failed (HTTP %d)", status)}
}

// apiErrorMessage pulls the server's error message out of an error payload,
// tolerating bodies that are not the documented shape.
func apiErrorMessage(body []byte) string {
	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.Error == nil {
		return ""
	}
	return decoded.Error.Message
}
