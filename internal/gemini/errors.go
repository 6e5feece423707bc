package gemini

import "errors"

// API failure taxonomy. Every provider in this program maps its failures
// onto these values so the chat loop can render them uniformly; none of
// them is fatal, each becomes one error entry in the conversation.
var (
	ErrUnauthorized      = errors.New("API key was rejected")
	ErrQuotaExceeded     = errors.New("quota exceeded or rate limited")
	ErrMalformedResponse = errors.New("malformed API response")
)

// NetworkError wraps transport-level failures, including timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
