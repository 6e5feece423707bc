package core

import (
	"sync"

	"github.com/elxecutor/gemini/internal/models"
)

// ChatState owns the conversation log and the single-request gate.
// The generation counter tags each request; Cancel advances it so a late
// result from a cancelled request no longer matches and is discarded.
type ChatState struct {
	mu         sync.RWMutex
	messages   []models.Message
	pending    bool
	lastErr    error
	generation int
}

func NewChatState() *ChatState {
	return &ChatState{
		messages: make([]models.Message, 0),
	}
}

// Messages returns a snapshot of the conversation log.
func (cs *ChatState) Messages() []models.Message {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]models.Message, len(cs.messages))
	copy(out, cs.messages)
	return out
}

func (cs *ChatState) Pending() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.pending
}

func (cs *ChatState) LastError() error {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastErr
}

// AppendProgram appends a program notice (welcome banner, instructions).
func (cs *ChatState) AppendProgram(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.messages = append(cs.messages, models.NewProgramMessage(content))
}

// AppendSeeded appends a pre-built message, used by demo mode.
func (cs *ChatState) AppendSeeded(msg models.Message) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.messages = append(cs.messages, msg)
}

// StartRequest atomically appends the user message, flips pending, and
// returns the generation tag for the new request. It fails when a request
// is already outstanding; the caller must not issue a second one.
func (cs *ChatState) StartRequest(content string) (int, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.pending {
		return 0, false
	}

	cs.pending = true
	cs.lastErr = nil
	cs.generation++
	cs.messages = append(cs.messages, models.NewUserMessage(content))
	return cs.generation, true
}

// FinishWithReply appends the assistant reply and clears pending, unless
// the request was cancelled or superseded in the meantime.
func (cs *ChatState) FinishWithReply(generation int, content string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.pending || generation != cs.generation {
		return false
	}

	cs.pending = false
	cs.lastErr = nil
	cs.messages = append(cs.messages, models.NewAssistantMessage(content))
	return true
}

// FinishWithError appends an error-tagged entry and clears pending, under
// the same staleness rule as FinishWithReply.
func (cs *ChatState) FinishWithError(generation int, err error, content string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.pending || generation != cs.generation {
		return false
	}

	cs.pending = false
	cs.lastErr = err
	cs.messages = append(cs.messages, models.NewErrorMessage(content))
	return true
}

// CancelRequest clears pending and advances the generation so the in-flight
// result will be dropped on arrival. Returns false when nothing is pending.
func (cs *ChatState) CancelRequest() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.pending {
		return false
	}

	cs.pending = false
	cs.generation++
	return true
}
