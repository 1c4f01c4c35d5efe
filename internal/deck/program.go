package deck

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunLive runs the deck as a full-screen Bubble Tea program until the user
// quits or ctx is cancelled.
func RunLive(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, fmt.Errorf("run live ui: %w", err)
	}
	if typed, ok := final.(Model); ok {
		return typed, nil
	}
	return m, nil
}
