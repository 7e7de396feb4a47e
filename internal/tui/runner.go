package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sftools/sferd/internal/tui/components"
)

// ErrCancelled is returned when the user aborts an interactive selection.
var ErrCancelled = errors.New("selection cancelled")

// PickObjects runs the multi-select picker and returns the chosen values.
// Returns ErrCancelled when the user quits without confirming.
func PickObjects(title string, items []components.Item, preselected []string) ([]string, error) {
	picker := components.NewPicker(title, items).WithPreselected(preselected)

	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return nil, err
	}

	result, ok := final.(components.Picker)
	if !ok || result.Cancelled() {
		return nil, ErrCancelled
	}
	return result.Chosen(), nil
}
