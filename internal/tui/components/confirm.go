package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/clipdeck/internal/tui"
)

// ConfirmModel is a yes/no prompt embedded in a larger view. It defaults to
// "No" so a stray enter never confirms a destructive action.
type ConfirmModel struct {
	message   string
	cursor    int
	confirmed bool
	done      bool
}

// NewConfirm creates a new confirmation component
func NewConfirm(message string) ConfirmModel {
	return ConfirmModel{
		message: message,
		cursor:  1,
	}
}

// Update handles key presses
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.cursor = 0
	case "right", "l":
		m.cursor = 1
	case "enter", " ":
		m.confirmed = m.cursor == 0
		m.done = true
	case "y":
		m.confirmed = true
		m.done = true
	case "n", "esc", "q":
		m.confirmed = false
		m.done = true
	}
	return m, nil
}

// View renders the prompt
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yes := "  Yes"
	no := "  No"
	if m.cursor == 0 {
		yes = tui.SelectedStyle.Render("> Yes")
	} else {
		no = tui.SelectedStyle.Render("> No")
	}

	return fmt.Sprintf("%s  %s  %s  %s",
		m.message,
		yes, no,
		tui.HelpStyle.Render("←→ choose • enter confirm • y/n"))
}

// IsConfirmed returns whether the user confirmed
func (m ConfirmModel) IsConfirmed() bool {
	return m.confirmed
}

// IsDone returns whether the user answered
func (m ConfirmModel) IsDone() bool {
	return m.done
}
