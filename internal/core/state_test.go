package core

import (
	"errors"
	"testing"

	"github.com/elxecutor/gemini/internal/models"
)

func TestStartRequest_GatesSecondSubmit(t *testing.T) {
	state := NewChatState()

	gen, ok := state.StartRequest("hello")
	if !ok {
		t.Fatal("first StartRequest should be accepted")
	}
	if !state.Pending() {
		t.Error("Pending() = false after StartRequest")
	}

	if _, ok := state.StartRequest("again"); ok {
		t.Error("second StartRequest while pending should be rejected")
	}

	// Only the accepted submit appended a user message.
	users := 0
	for _, msg := range state.Messages() {
		if msg.Role == models.RoleUser {
			users++
		}
	}
	if users != 1 {
		t.Errorf("user message count = %d, want 1", users)
	}

	if !state.FinishWithReply(gen, "hi there") {
		t.Error("FinishWithReply with current generation should apply")
	}
	if state.Pending() {
		t.Error("Pending() = true after FinishWithReply")
	}
}

func TestCancel_DiscardsLateResult(t *testing.T) {
	state := NewChatState()

	gen, _ := state.StartRequest("hello")
	if !state.CancelRequest() {
		t.Fatal("CancelRequest while pending should succeed")
	}

	if state.FinishWithReply(gen, "too late") {
		t.Error("a result from the cancelled request must be discarded")
	}
	if state.FinishWithError(gen, errors.New("boom"), "Error: boom") {
		t.Error("an error from the cancelled request must be discarded")
	}

	for _, msg := range state.Messages() {
		if msg.Role == models.RoleAssistant {
			t.Errorf("unexpected assistant entry after cancel: %q", msg.Content)
		}
	}
}

func TestCancel_NoopWhenIdle(t *testing.T) {
	state := NewChatState()
	if state.CancelRequest() {
		t.Error("CancelRequest with nothing pending should report false")
	}
}

func TestCancel_DoesNotBlockNextRequest(t *testing.T) {
	state := NewChatState()

	oldGen, _ := state.StartRequest("first")
	state.CancelRequest()

	newGen, ok := state.StartRequest("second")
	if !ok {
		t.Fatal("StartRequest after cancel should be accepted")
	}
	if newGen == oldGen {
		t.Error("generations must differ across cancel")
	}

	// The stale result still cannot land, the fresh one can.
	if state.FinishWithReply(oldGen, "stale") {
		t.Error("stale generation applied")
	}
	if !state.FinishWithReply(newGen, "fresh") {
		t.Error("current generation rejected")
	}
}

func TestFinishWithError_TagsEntry(t *testing.T) {
	state := NewChatState()

	gen, _ := state.StartRequest("hello")
	if !state.FinishWithError(gen, errors.New("boom"), "Error: boom") {
		t.Fatal("FinishWithError should apply")
	}

	msgs := state.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != models.RoleAssistant || !last.IsError {
		t.Errorf("last entry = %+v, want error-tagged assistant message", last)
	}
	if state.LastError() == nil {
		t.Error("LastError() = nil after a failed request")
	}
}
