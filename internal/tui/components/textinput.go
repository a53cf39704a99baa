package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInputModel wraps the bubbles textinput with submit/cancel handling
type TextInputModel struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

// NewTextInput creates a focused single-line input prefilled with value
func NewTextInput(prompt, value string) TextInputModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	return TextInputModel{input: ti}
}

// Init starts the cursor blinking
func (m TextInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m TextInputModel) Update(msg tea.Msg) (TextInputModel, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			m.done = true
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input
func (m TextInputModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View()
}

// Value returns the current text
func (m TextInputModel) Value() string {
	return m.input.Value()
}

// IsDone returns whether the user submitted or cancelled
func (m TextInputModel) IsDone() bool {
	return m.done
}

// IsCancelled returns whether the user cancelled
func (m TextInputModel) IsCancelled() bool {
	return m.cancelled
}
