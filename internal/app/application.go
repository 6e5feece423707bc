package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elxecutor/gemini/internal/config"
	"github.com/elxecutor/gemini/internal/core"
	"github.com/elxecutor/gemini/internal/dispatcher"
	"github.com/elxecutor/gemini/internal/eventbus"
	"github.com/elxecutor/gemini/internal/models"
	"github.com/elxecutor/gemini/internal/update"
)

// Application wires the config, event bus, chat service and UI together.
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ChatService
	model      *AppModel
}

// NewApplication builds a ready-to-run application. demo swaps the network
// responder for the canned session.
func NewApplication(cfg *config.Config, demo bool) *Application {
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewChatService(cfg, eb, demo)

	model := &AppModel{
		appModel:   createInitialAppModel(demo),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}
}

// Start runs the core service and the UI; it blocks until the UI exits.
func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(demo bool) models.AppModel {
	// Messages start empty; core pushes them as the single source of truth.
	return models.AppModel{
		Messages: make([]models.Message, 0),
		Status:   update.InitialStatus(),
		Spinner:  models.NewSpinner(),
		Demo:     demo,
	}
}
