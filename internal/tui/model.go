package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/storage"
)

// Model is the dashboard: today's habits with streaks and scores, the day's
// mood, and the micro-dare. Every action runs through engine.Reduce and a
// full snapshot save, same as the non-interactive commands.
type Model struct {
	store    storage.Provider
	snap     models.Snapshot
	today    string
	keys     KeyMap
	help     help.Model
	cursor   int
	saveErr  error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, snap models.Snapshot, today string) Model {
	return Model{
		store: store,
		snap:  snap,
		today: today,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
