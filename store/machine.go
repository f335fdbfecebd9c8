package store

import tea "github.com/charmbracelet/bubbletea"

// wrapCmd lifts a child machine's command into the parent's message space:
// whatever message the command eventually produces is wrapped so it routes
// back through the same parent to the machine instance that issued it.
// Batches are wrapped element-wise so the runtime still runs them
// concurrently.
func wrapCmd(cmd tea.Cmd, wrap func(tea.Msg) tea.Msg) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			wrapped := make([]tea.Cmd, len(batch))
			for i, c := range batch {
				wrapped[i] = wrapCmd(c, wrap)
			}
			return tea.BatchMsg(wrapped)
		}
		return wrap(msg)
	}
}
