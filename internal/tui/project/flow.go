// Package project holds the huh forms shown before the editor opens.
package project

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/jakoblorz/clipdeck/internal/tui"
)

const maxTitleLength = 120

// Flow asks for the settings of a new project.
type Flow struct {
	theme *huh.Theme
}

// Result captures the answers of a completed flow.
type Result struct {
	Title string
}

// NewFlow constructs a Flow with the clipdeck huh theme.
func NewFlow() *Flow {
	return &Flow{theme: tui.NewHuhTheme()}
}

// Run shows the form prefilled with initial; returns nil result on user abort.
func (f *Flow) Run(initial string) (*Result, error) {
	title := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&title).
				Placeholder(models.DefaultTitle).
				CharLimit(maxTitleLength).
				Validate(validateTitle),
		).
			Title("New Project").
			Description("Name the project. You can rename it later with r."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return &Result{Title: strings.TrimSpace(title)}, nil
}

func validateTitle(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len([]rune(v)) > maxTitleLength {
		return fmt.Errorf("title is longer than %d characters", maxTitleLength)
	}
	return nil
}
