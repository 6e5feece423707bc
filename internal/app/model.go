package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elxecutor/gemini/internal/dispatcher"
	"github.com/elxecutor/gemini/internal/models"
	"github.com/elxecutor/gemini/internal/update"
	"github.com/elxecutor/gemini/ui/components"
)

// Fixed chrome heights: 3-line title, 3-line input, 1-line status.
const chromeHeight = 7

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.appModel.Spinner.Tick,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Core events resolve the listen command, so re-arm it.
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.dispatcher.GetEventBus())
	return m, cmd
}

func (m *AppModel) View() string {
	width := m.appModel.Width
	if width <= 0 {
		width = 80
	}
	chatHeight := m.appModel.Height - chromeHeight

	var b strings.Builder
	b.WriteString(components.RenderTitle(width, m.appModel.AnimationFrame))
	b.WriteString("\n")
	b.WriteString(components.RenderMessages(
		m.appModel.Messages, width, chatHeight,
		m.appModel.Loading, m.appModel.Spinner.View()))
	b.WriteString(components.RenderInput(m.appModel.Draft, m.appModel.Cursor, width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(
		m.appModel.Status, m.appModel.Loading, m.appModel.Spinner.View(), width))

	return b.String()
}
