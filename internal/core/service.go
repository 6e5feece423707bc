package core

import (
	"context"
	"errors"
	"time"

	"github.com/elxecutor/gemini/internal/config"
	"github.com/elxecutor/gemini/internal/eventbus"
	"github.com/elxecutor/gemini/internal/gemini"
)

// ChatService runs the conversation state machine. It consumes UI events
// from the bus, issues at most one API request at a time, and pushes state
// changes back to the UI. All state mutation happens on the event loop;
// spawned request goroutines only deliver results into it.
type ChatService struct {
	responder Responder
	state     *ChatState
	eventBus  *eventbus.EventBus
	timeout   time.Duration

	ctx       context.Context
	cancel    context.CancelFunc
	reqCancel context.CancelFunc // cancels the in-flight request, event loop only
	results   chan requestResult

	lastSentCount int // messages already pushed to the UI
}

type requestResult struct {
	generation int
	text       string
	err        error
}

func NewChatService(cfg *config.Config, eb *eventbus.EventBus, demo bool) *ChatService {
	state := NewChatState()
	ctx, cancel := context.WithCancel(context.Background())

	service := &ChatService{
		state:    state,
		eventBus: eb,
		timeout:  cfg.RequestTimeout(),
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan requestResult, 1),
	}

	if demo {
		service.responder = demoResponder{}
		state.AppendProgram("-- GEMINI CHAT · DEMO MODE --")
		state.AppendProgram("Canned conversation, no network calls. Ctrl+C to exit.")
		state.AppendProgram("")
		seedDemoConversation(state)
	} else {
		service.responder = NewResponder(cfg)
		addWelcomeMessages(state, cfg)
	}

	return service
}

// Start pushes the initial state and runs the event loop in a goroutine.
func (cs *ChatService) Start() {
	cs.pushStateToUI("")
	go cs.eventLoop()
}

func (cs *ChatService) Stop() {
	cs.cancel()
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		case res := <-cs.results:
			cs.handleResult(res)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.submit(e.Content)
	case eventbus.CancelRequestEvent:
		cs.cancelRequest()
	}
}

// submit starts one request for the given user text. A submit arriving
// while a request is pending is dropped; the UI gates this too, but the
// state machine is the authority.
func (cs *ChatService) submit(content string) {
	generation, ok := cs.state.StartRequest(content)
	if !ok {
		return
	}
	cs.pushStateToUI("")

	reqCtx, reqCancel := context.WithTimeout(cs.ctx, cs.timeout)
	cs.reqCancel = reqCancel

	history := cs.state.Messages()
	go func() {
		defer reqCancel()
		text, err := cs.responder.Respond(reqCtx, history)
		select {
		case cs.results <- requestResult{generation: generation, text: text, err: err}:
		case <-cs.ctx.Done():
		}
	}()
}

func (cs *ChatService) cancelRequest() {
	if !cs.state.CancelRequest() {
		return
	}
	if cs.reqCancel != nil {
		cs.reqCancel()
		cs.reqCancel = nil
	}
	cs.pushStateToUI("Message cancelled")
}

// handleResult applies a finished request to the state. Results whose
// generation no longer matches (cancelled requests) are dropped silently.
func (cs *ChatService) handleResult(res requestResult) {
	if res.err != nil {
		if cs.state.FinishWithError(res.generation, res.err, formatAPIError(res.err)) {
			cs.pushStateToUI("")
		}
		return
	}
	if cs.state.FinishWithReply(res.generation, res.text) {
		cs.pushStateToUI("Response received!")
	}
}

// pushStateToUI sends entries appended since the last push, plus the
// pending flag and last error.
func (cs *ChatService) pushStateToUI(notice string) {
	all := cs.state.Messages()
	fresh := all[cs.lastSentCount:]
	cs.lastSentCount = len(all)

	_ = cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Messages: fresh,
		Pending:  cs.state.Pending(),
		Notice:   notice,
		Err:      cs.state.LastError(),
	})
}

// formatAPIError renders a failure as the text of the chat entry. The
// "Error:" prefix plus the IsError tag is how the UI distinguishes these
// from genuine replies.
func formatAPIError(err error) string {
	var netErr *gemini.NetworkError
	switch {
	case errors.Is(err, gemini.ErrUnauthorized):
		return "Error: the API rejected your key. Run with --reset-config to enter a new one."
	case errors.Is(err, gemini.ErrQuotaExceeded):
		return "Error: quota exceeded or rate limited. Wait a moment and try again."
	case errors.Is(err, gemini.ErrMalformedResponse):
		return "Error: the API returned a response I couldn't read."
	case errors.As(err, &netErr):
		return "Error: " + netErr.Error()
	default:
		return "Error: " + err.Error()
	}
}

func addWelcomeMessages(state *ChatState, cfg *config.Config) {
	state.AppendProgram("-- GEMINI CHAT --")
	state.AppendProgram("Model: " + cfg.ModelName())
	state.AppendProgram("Type your message and press Enter. Esc cancels a pending request.")
	state.AppendProgram("Controls: Ctrl+C to exit")
	state.AppendProgram("")
}
