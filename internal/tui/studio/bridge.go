package studio

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/clipdeck/internal/models"
)

// snapshotMsg carries a published project into the bubbletea loop
type snapshotMsg struct {
	project models.Project
}

// snapshotBridge hands store publications to the program. It holds at most
// one pending snapshot: a newer one replaces an unread older one, since each
// snapshot is the complete project.
type snapshotBridge struct {
	ch chan models.Project
}

func newSnapshotBridge() *snapshotBridge {
	return &snapshotBridge{ch: make(chan models.Project, 1)}
}

// push never blocks. The store serializes publications, so there is a single
// pusher at a time.
func (b *snapshotBridge) push(p models.Project) {
	for {
		select {
		case b.ch <- p:
			return
		default:
		}
		select {
		case <-b.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next snapshot
func (b *snapshotBridge) wait() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{project: <-b.ch}
	}
}
