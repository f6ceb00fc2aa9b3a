package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/habits/internal/tui"
)

var errNotTerminal = errors.New("board needs an interactive terminal")

type BoardCmd struct{}

func (c *BoardCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) || ctx.In != os.Stdin {
		return errNotTerminal
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Journal, user, ctx.Now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board failed: %w", err)
	}
	return nil
}
