// Package studio is the editor's main screen: media side panel, preview
// placeholder, timeline strip and transport bar over the project store.
package studio

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/jakoblorz/clipdeck/internal/playback"
	"github.com/jakoblorz/clipdeck/internal/store"
	"github.com/jakoblorz/clipdeck/internal/tui"
	"github.com/jakoblorz/clipdeck/internal/tui/components"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// ProjectSource is the read side of the project store
type ProjectSource interface {
	Snapshot() models.Project
	Subscribe(listener store.Listener) store.Unsubscribe
}

// Commands are the mutations the screen may request
type Commands interface {
	AddVideo() (models.Clip, error)
	AddAudio() (models.Clip, error)
	Remove(id string)
	Clear()
	Rename(title string)
}

// mode is what the key handler is currently driving
type mode int

const (
	modeBrowse mode = iota
	modeRename
	modeConfirmClear
)

// Model is the bubbletea model for the editor screen
type Model struct {
	source      ProjectSource
	commands    Commands
	logger      *slog.Logger
	bridge      *snapshotBridge
	unsubscribe store.Unsubscribe

	// Data
	project   models.Project
	selected  int
	transport playback.State
	status    string
	err       error

	// Components
	mode     mode
	rename   components.TextInputModel
	confirm  components.ConfirmModel
	keys     keyMap
	help     help.Model
	scrubber progress.Model

	width  int
	height int
}

// New creates the editor screen and subscribes it to source
func New(source ProjectSource, commands Commands, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bridge := newSnapshotBridge()
	unsubscribe := source.Subscribe(bridge.push)

	scrubber := progress.New(
		progress.WithSolidFill(string(tui.Accent)),
		progress.WithoutPercentage(),
	)

	m := Model{
		source:      source,
		commands:    commands,
		logger:      logger.With("component", "studio"),
		bridge:      bridge,
		unsubscribe: unsubscribe,
		project:     source.Snapshot(),
		transport:   playback.NewState(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		scrubber:    scrubber,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts listening for store publications
func (m Model) Init() tea.Cmd {
	return m.bridge.wait()
}

// Update handles messages and mode transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		// a command may already have pulled a newer project than this one
		m.refresh()
		return m, m.bridge.wait()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	switch m.mode {
	case modeRename:
		return m.updateRename(msg)
	case modeConfirmClear:
		return m.updateConfirmClear(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

// updateBrowse handles keys on the main screen
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.AddVideo):
		m.addClip(m.commands.AddVideo)

	case key.Matches(msg, m.keys.AddAudio):
		m.addClip(m.commands.AddAudio)

	case key.Matches(msg, m.keys.Remove):
		clip, ok := m.selectedClip()
		if !ok {
			m.status = "No clip selected"
			break
		}
		m.commands.Remove(clip.ID)
		m.refresh()
		m.status = fmt.Sprintf("Removed %s", clip.Name())

	case key.Matches(msg, m.keys.Clear):
		if len(m.project.Clips) == 0 {
			m.status = "Nothing to clear"
			break
		}
		m.mode = modeConfirmClear
		m.confirm = components.NewConfirm(fmt.Sprintf("Remove all %d clips?", len(m.project.Clips)))

	case key.Matches(msg, m.keys.Rename):
		m.mode = modeRename
		m.rename = components.NewTextInput("Title: ", m.project.Title)
		return m, m.rename.Init()

	case key.Matches(msg, m.keys.Prev):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Next):
		if m.selected < len(m.project.Clips)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.PlayPause):
		m.transport = m.transport.Toggle()

	case key.Matches(msg, m.keys.Stop):
		m.transport = m.transport.Stop()

	case key.Matches(msg, m.keys.Faster):
		m.transport = m.transport.Faster()

	case key.Matches(msg, m.keys.Slower):
		m.transport = m.transport.Slower()

	case key.Matches(msg, m.keys.SkipBack), key.Matches(msg, m.keys.SkipFwd):
		m.logger.Debug("transport control not wired", "key", msg.String())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateRename feeds the title input until it is submitted or cancelled
func (m Model) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)

	if m.rename.IsDone() {
		m.mode = modeBrowse
		title := strings.TrimSpace(m.rename.Value())
		switch {
		case m.rename.IsCancelled():
			m.status = "Rename cancelled"
		case title == "":
			m.err = fmt.Errorf("title cannot be empty")
		default:
			m.commands.Rename(title)
			m.refresh()
			m.status = fmt.Sprintf("Renamed project to %q", title)
		}
		return m, nil
	}

	return m, cmd
}

// updateConfirmClear waits for the answer to the clear prompt
func (m Model) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	if m.confirm.IsDone() {
		m.mode = modeBrowse
		if m.confirm.IsConfirmed() {
			m.commands.Clear()
			m.refresh()
			m.selected = 0
			m.status = "Cleared all clips"
		}
	}

	return m, nil
}

func (m *Model) addClip(add func() (models.Clip, error)) {
	clip, err := add()
	if err != nil {
		m.err = err
		m.logger.Error("failed to add clip", "error", err)
		return
	}
	m.refresh()
	m.selected = len(m.project.Clips) - 1
	m.status = fmt.Sprintf("Added %s", clip.Name())
}

// refresh reads the current project from the store
func (m *Model) refresh() {
	m.project = m.source.Snapshot()
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.project.Clips) {
		m.selected = len(m.project.Clips) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedClip() (models.Clip, bool) {
	if m.selected < 0 || m.selected >= len(m.project.Clips) {
		return models.Clip{}, false
	}
	return m.project.Clips[m.selected], true
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.scrubber.Width = max(width/3, 10)
}

// Project returns the snapshot the screen is showing
func (m Model) Project() models.Project {
	return m.project
}

// Transport returns the transport state
func (m Model) Transport() playback.State {
	return m.transport
}

// Err returns the last error shown in the status line
func (m Model) Err() error {
	return m.err
}
