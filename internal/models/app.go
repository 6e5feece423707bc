package models

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// AppModel holds the UI state - only local UI concerns. Conversation truth
// lives in core; the UI appends whatever core pushes over the event bus.
type AppModel struct {
	Messages       []Message     // Messages received from core so far
	Draft          string        // Unsent input buffer
	Cursor         int           // Rune position within Draft, always in [0, len]
	Status         string        // Status bar text
	Loading        bool          // A request is in flight
	Spinner        spinner.Model // Pending indicator
	AnimationFrame int           // Drives the title color cycle
	Width          int           // Terminal width
	Height         int           // Terminal height
	Demo           bool          // Canned session, no network
}

// NewSpinner returns the braille spinner used while a request is pending.
func NewSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	return s
}

// InsertRunes inserts text at the cursor and advances it.
func (m *AppModel) InsertRunes(rs []rune) {
	draft := []rune(m.Draft)
	out := make([]rune, 0, len(draft)+len(rs))
	out = append(out, draft[:m.Cursor]...)
	out = append(out, rs...)
	out = append(out, draft[m.Cursor:]...)
	m.Draft = string(out)
	m.Cursor += len(rs)
}

// DeleteRuneBackward removes the rune before the cursor, if any.
func (m *AppModel) DeleteRuneBackward() {
	if m.Cursor == 0 {
		return
	}
	draft := []rune(m.Draft)
	m.Draft = string(append(draft[:m.Cursor-1:m.Cursor-1], draft[m.Cursor:]...))
	m.Cursor--
}

func (m *AppModel) MoveCursorLeft() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

func (m *AppModel) MoveCursorRight() {
	if m.Cursor < len([]rune(m.Draft)) {
		m.Cursor++
	}
}

func (m *AppModel) MoveCursorStart() { m.Cursor = 0 }

func (m *AppModel) MoveCursorEnd() { m.Cursor = len([]rune(m.Draft)) }

// ClearDraft empties the input buffer and resets the cursor.
func (m *AppModel) ClearDraft() {
	m.Draft = ""
	m.Cursor = 0
}
