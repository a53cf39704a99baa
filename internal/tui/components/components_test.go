package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	m := NewConfirm("Clear all clips?")
	require.Contains(t, m.View(), "Clear all clips?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.IsDone())
	require.False(t, m.IsConfirmed())
	require.Empty(t, m.View())
}

func TestConfirm_Choices(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{name: "left then enter", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, want: true},
		{name: "y shortcut", keys: []tea.KeyMsg{runes("y")}, want: true},
		{name: "n shortcut", keys: []tea.KeyMsg{runes("n")}, want: false},
		{name: "esc cancels", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEsc}}, want: false},
		{name: "left right enter", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyEnter}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirm("Sure?")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			require.True(t, m.IsDone())
			require.Equal(t, tt.want, m.IsConfirmed())
		})
	}
}

func TestConfirm_IgnoresKeysAfterDone(t *testing.T) {
	m := NewConfirm("Sure?")
	m, _ = m.Update(runes("n"))
	m, _ = m.Update(runes("y"))
	require.False(t, m.IsConfirmed())
}

func TestTextInput_SubmitAndCancel(t *testing.T) {
	m := NewTextInput("Title: ", "Untitled")
	m, _ = m.Update(runes("!"))
	require.Equal(t, "Untitled!", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.IsDone())
	require.False(t, m.IsCancelled())
	require.Equal(t, "Untitled!", m.Value())

	c := NewTextInput("Title: ", "Keep")
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, c.IsDone())
	require.True(t, c.IsCancelled())
}
