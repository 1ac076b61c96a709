package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.snap.Habits)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Complete):
			m = m.logSelected(models.StatusCompleted)

		case key.Matches(msg, m.keys.Skip):
			m = m.logSelected(models.StatusSkipped)

		case key.Matches(msg, m.keys.Mood):
			m = m.cycleMood()

		case key.Matches(msg, m.keys.Dare):
			m = m.apply(engine.CompleteDare{Day: m.today})
		}
	}

	return m, nil
}

func (m Model) logSelected(status models.LogStatus) Model {
	if m.cursor >= len(m.snap.Habits) {
		return m
	}
	return m.apply(engine.LogHabit{
		HabitID: m.snap.Habits[m.cursor].ID,
		Day:     m.today,
		Status:  status,
	})
}

// cycleMood steps through the fixed mood order, starting from the currently
// recorded mood if any.
func (m Model) cycleMood() Model {
	moods := models.Moods()
	next := moods[0]
	if current, ok := m.snap.MoodFor(m.today); ok {
		for i, mood := range moods {
			if mood == current {
				next = moods[(i+1)%len(moods)]
				break
			}
		}
	}
	return m.apply(engine.SetMood{Day: m.today, Mood: next})
}

func (m Model) apply(action engine.Action) Model {
	next := engine.Reduce(m.snap, action)
	if err := m.store.Save(next); err != nil {
		m.saveErr = err
		return m
	}
	m.saveErr = nil
	m.snap = next
	return m
}
