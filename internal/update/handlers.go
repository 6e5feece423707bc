package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elxecutor/gemini/internal/eventbus"
	"github.com/elxecutor/gemini/internal/models"
)

const (
	statusReady   = "Ready to chat with Gemini!"
	statusSending = "Sending message to Gemini..."
)

// InitialStatus is the status bar text before the first core push.
func InitialStatus() string { return statusReady }

// animationFrames bounds the frame counter; the title palette cycle only
// cares about the value modulo the palette length.
const animationFrames = 100

// HandleKeyMsg maps key events to conversation transitions. Submit is a
// no-op on an empty draft or while a request is pending; Esc only acts
// while pending; Ctrl+C quits immediately, abandoning any in-flight call.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		submitDraft(appModel, eb)
	case tea.KeyEsc:
		if appModel.Loading {
			if err := eb.SendToCore(eventbus.CancelRequestEvent{}); err != nil {
				appModel.Status = "Error cancelling: " + err.Error()
			}
		}
	case tea.KeyBackspace:
		appModel.DeleteRuneBackward()
	case tea.KeyLeft:
		appModel.MoveCursorLeft()
	case tea.KeyRight:
		appModel.MoveCursorRight()
	case tea.KeyHome, tea.KeyCtrlA:
		appModel.MoveCursorStart()
	case tea.KeyEnd, tea.KeyCtrlE:
		appModel.MoveCursorEnd()
	case tea.KeySpace:
		appModel.InsertRunes([]rune{' '})
	case tea.KeyRunes:
		appModel.InsertRunes(keyMsg.Runes)
	}
	return nil
}

func submitDraft(appModel *models.AppModel, eb *eventbus.EventBus) {
	if strings.TrimSpace(appModel.Draft) == "" || appModel.Loading {
		return
	}

	if err := eb.SendToCore(eventbus.SendMessageEvent{Content: appModel.Draft}); err != nil {
		appModel.Status = "Error sending message: " + err.Error()
		return
	}

	// Local UI state only; the conversation entry comes back from core.
	appModel.ClearDraft()
	appModel.Loading = true
	appModel.Status = statusSending
}

// CoreEventMsg wraps core events for bubbletea.
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent applies a state push from core to the UI model.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	event, ok := coreEventMsg.Event.(eventbus.StateUpdateEvent)
	if !ok {
		return nil
	}

	appModel.Messages = append(appModel.Messages, event.Messages...)
	appModel.Loading = event.Pending

	switch {
	case event.Err != nil:
		appModel.Status = "Error occurred - see the chat for details"
	case event.Notice != "":
		appModel.Status = event.Notice
	case event.Pending:
		appModel.Status = statusSending
	default:
		appModel.Status = statusReady
	}

	return nil
}

type TickMsg time.Time

// TickCmd drives the title animation at 10 frames per second.
func TickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	appModel.AnimationFrame = (appModel.AnimationFrame + 1) % animationFrames
	return TickCmd()
}
