package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/elxecutor/gemini/internal/config"
	"github.com/elxecutor/gemini/internal/gemini"
	"github.com/elxecutor/gemini/internal/models"
)

// Responder produces one assistant reply for the conversation so far.
// The history ends with the user turn being answered. Implementations map
// their failures onto the gemini error taxonomy.
type Responder interface {
	Respond(ctx context.Context, history []models.Message) (string, error)
}

// NewResponder builds the provider selected by the config.
func NewResponder(cfg *config.Config) Responder {
	if cfg.Provider == config.ProviderOpenAI {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		return &openaiResponder{
			client:      openai.NewClientWithConfig(clientConfig),
			model:       cfg.ModelName(),
			sendHistory: cfg.SendsHistory(),
		}
	}

	client := gemini.NewClient(cfg.APIKey, cfg.ModelName())
	if cfg.BaseURL != "" {
		client = client.WithBaseURL(cfg.BaseURL)
	}
	return &geminiResponder{client: client, sendHistory: cfg.SendsHistory()}
}

// chatTurns filters the history down to the user/assistant exchange,
// dropping program notices and error entries.
func chatTurns(history []models.Message) []models.Message {
	turns := make([]models.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == models.RoleProgram || msg.IsError {
			continue
		}
		turns = append(turns, msg)
	}
	return turns
}

type geminiResponder struct {
	client      *gemini.Client
	sendHistory bool
}

func (r *geminiResponder) Respond(ctx context.Context, history []models.Message) (string, error) {
	turns := chatTurns(history)
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: empty conversation", gemini.ErrMalformedResponse)
	}
	if !r.sendHistory {
		turns = turns[len(turns)-1:]
	}

	contents := make([]gemini.Content, 0, len(turns))
	for _, msg := range turns {
		role := gemini.RoleUser
		if msg.Role == models.RoleAssistant {
			role = gemini.RoleModel
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}

	return r.client.Generate(ctx, contents)
}

type openaiResponder struct {
	client      *openai.Client
	model       string
	sendHistory bool
}

func (r *openaiResponder) Respond(ctx context.Context, history []models.Message) (string, error) {
	turns := chatTurns(history)
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: empty conversation", gemini.ErrMalformedResponse)
	}
	if !r.sendHistory {
		turns = turns[len(turns)-1:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, msg := range turns {
		role := openai.ChatMessageRoleUser
		if msg.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: messages,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", gemini.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return fmt.Errorf("%w (HTTP %d)", gemini.ErrUnauthorized, apiErr.HTTPStatusCode)
		case 429:
			return fmt.Errorf("%w (HTTP %d)", gemini.ErrQuotaExceeded, apiErr.HTTPStatusCode)
		}
		return &gemini.NetworkError{Err: err}
	}
	return &gemini.NetworkError{Err: err}
}
