package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent     = lipgloss.Color("#7D56F4")
	VideoColor = lipgloss.Color("#3C8DBC")
	AudioColor = lipgloss.Color("#04B575")
	Subtle     = lipgloss.Color("#666666")
	Muted      = lipgloss.Color("#888888")

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	// Header styling for panel headings
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Accent).
			Padding(0, 1)

	// Selected item styling
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Button styling for the add actions
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3A3A3A")).
			Padding(0, 1)

	// Panel styling
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// Timeline block styling, one per media type
	VideoBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(VideoColor)

	AudioBlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(AudioColor)

	SelectedBlockStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Accent).
				Bold(true)

	// Help text styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(AudioColor).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(Subtle)

	// Description styling
	DescStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)
