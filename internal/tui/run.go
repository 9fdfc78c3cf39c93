package tui

import (
	"context"
	"fmt"

	"mainstack/revenue/internal/filterstate"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx ends.
// State changes made outside the program, such as a background refresh, are
// forwarded to the model.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := m.opts.State.Subscribe(func(s filterstate.Snapshot) {
		go p.Send(stateChangedMsg{revision: s.Revision})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
