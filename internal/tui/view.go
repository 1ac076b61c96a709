package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iksdev/habita/internal/engine"
	"github.com/iksdev/habita/internal/errors"
	"github.com/iksdev/habita/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("HABITA — The Daily Work"))
	b.WriteString(mutedStyle.Render("  " + m.today))
	b.WriteString("\n\n")

	if engine.EmergencyDue(m.snap.Logs, m.today) {
		days, _ := engine.DaysInactive(m.snap.Logs, m.today)
		b.WriteString(warnStyle.Render(fmt.Sprintf("⚠ %d days without a log. No guilt. Just motion.", days)))
		b.WriteString("\n\n")
	}

	if len(m.snap.Habits) == 0 {
		b.WriteString(mutedStyle.Render("No habits in the vault yet."))
		b.WriteString("\n")
	}
	for i, h := range m.snap.Habits {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		status := "·"
		style := lipgloss.NewStyle()
		if log, ok := m.snap.LogFor(m.today, h.ID); ok {
			switch log.Status {
			case models.StatusCompleted:
				status = "✓"
				style = doneStyle
			case models.StatusSkipped:
				status = "✗"
				style = skippedStyle
			}
		}
		streak := engine.Streak(m.snap.Logs, h.ID, m.today)
		line := fmt.Sprintf("%s%s %-24s %3dd streak  score %3.0f", marker, status, h.Name, streak, h.DisciplineScore)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if mood, ok := m.snap.MoodFor(m.today); ok {
		b.WriteString(fmt.Sprintf("Mood: %s %s\n", models.MoodEmoji[mood], mood))
	} else {
		b.WriteString(mutedStyle.Render("Mood: not set (m to cycle)"))
		b.WriteString("\n")
	}

	dare := engine.DareOfDay(m.today)
	if m.snap.MicroDareCompletedDate == m.today {
		b.WriteString(doneStyle.Render("Dare: " + dare + " ✓"))
	} else {
		b.WriteString(mutedStyle.Render("Dare: " + dare))
	}
	b.WriteString("\n")

	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(errors.Format(m.saveErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
