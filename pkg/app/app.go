package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/chaptercheck/pkg/app/screens"
	"github.com/kerbaras/chaptercheck/pkg/services"
)

type App struct {
	tracker *services.Tracker
}

func NewApp(tracker *services.Tracker) *App {
	return &App{tracker: tracker}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.tracker)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
