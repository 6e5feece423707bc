package eventbus

import (
	"errors"

	"github.com/elxecutor/gemini/internal/models"
)

// UIEvent represents events sent from UI to Core.
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI.
type CoreEvent interface {
	CoreEvent()
}

// SendMessageEvent - UI asks core to submit a chat turn.
type SendMessageEvent struct {
	Content string
}

func (SendMessageEvent) UIEvent() {}

// CancelRequestEvent - UI asks core to discard the in-flight request.
type CancelRequestEvent struct{}

func (CancelRequestEvent) UIEvent() {}

// StateUpdateEvent - Core pushes conversation changes to the UI.
// Messages contains only entries appended since the previous push.
type StateUpdateEvent struct {
	Messages []models.Message
	Pending  bool
	Notice   string // transient status line ("Response received!", "Message cancelled")
	Err      error  // last API failure, nil once recovered
}

func (StateUpdateEvent) CoreEvent() {}

// EventBus carries typed events between the UI loop and the core service.
// Sends never block; a full channel is reported as an error instead of
// stalling either loop.
type EventBus struct {
	uiToCore chan UIEvent
	coreToUI chan CoreEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, 16),
		coreToUI: make(chan CoreEvent, 16),
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return errors.New("UI to core channel is full")
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return errors.New("core to UI channel is full")
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
