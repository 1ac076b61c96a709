package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iksdev/habita/internal/logger"
	"github.com/iksdev/habita/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	snap, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	logger.Debug("Starting TUI")
	model := tui.NewModel(ctx.Store, snap, ctx.Today(snap))
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
