package core

import (
	"context"

	"github.com/elxecutor/gemini/internal/models"
)

// demoSeed is the canned conversation shown when the app starts in demo mode.
var demoSeed = []struct {
	role    models.Role
	content string
}{
	{models.RoleUser, "Hello Gemini! How are you today?"},
	{models.RoleAssistant, "Hello! I'm doing great, thank you for asking! I'm here to help you with any questions or tasks you might have. The weather has been lovely lately, and I've been enjoying our conversations. How has your day been going so far?"},
	{models.RoleUser, "That's wonderful to hear! I've been working on a terminal chat client in Go."},
	{models.RoleAssistant, "That sounds like an exciting project! Go is an excellent choice for building terminal applications. The combination of fast compile times, easy concurrency, and libraries like Bubble Tea makes it perfect for creating responsive and beautiful terminal interfaces. Are you finding the development process enjoyable?"},
	{models.RoleUser, "Yes, very much! The bubble design looks much better now."},
}

// demoReplies are served round-robin to turns submitted during demo mode.
var demoReplies = []string{
	"This is demo mode, so I'm answering from a canned script instead of calling the Gemini API.",
	"Everything you see here is rendered locally - demo mode makes zero network calls.",
	"Tip: press Esc to cancel a pending request, and Ctrl+C to quit.",
}

// demoResponder answers deterministically from demoReplies, indexed by how
// many user turns precede it so replays of the same session match exactly.
type demoResponder struct{}

func (demoResponder) Respond(_ context.Context, history []models.Message) (string, error) {
	users := 0
	for _, msg := range history {
		if msg.Role == models.RoleUser {
			users++
		}
	}

	// The seed already contains user turns; only count submissions made
	// after the canned conversation.
	seeded := 0
	for _, entry := range demoSeed {
		if entry.role == models.RoleUser {
			seeded++
		}
	}

	idx := users - seeded - 1
	if idx < 0 {
		idx = 0
	}
	return demoReplies[idx%len(demoReplies)], nil
}

func seedDemoConversation(state *ChatState) {
	for _, entry := range demoSeed {
		switch entry.role {
		case models.RoleUser:
			state.AppendSeeded(models.NewUserMessage(entry.content))
		case models.RoleAssistant:
			state.AppendSeeded(models.NewAssistantMessage(entry.content))
		}
	}
}
