package models

import "time"

// Role identifies the sender of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleProgram marks messages produced by the program itself
	// (welcome banner, instructions). They are never sent to the API.
	RoleProgram Role = "program"
)

// DisplayName returns the name shown in bubble headers.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Gemini"
	default:
		return string(r)
	}
}

// Message is a single entry in the conversation log. Immutable once created.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
	// IsError marks assistant-role entries that report an API failure,
	// so the UI can tag them apart from genuine replies.
	IsError bool
}

// NewUserMessage creates a user-authored message stamped now.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: time.Now()}
}

// NewAssistantMessage creates an assistant reply stamped now.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: time.Now()}
}

// NewErrorMessage creates an error-tagged assistant entry stamped now.
func NewErrorMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: time.Now(), IsError: true}
}

// NewProgramMessage creates a program notice stamped now.
func NewProgramMessage(content string) Message {
	return Message{Role: RoleProgram, Content: content, Timestamp: time.Now()}
}
