// Package store holds the current project snapshot and publishes every
// mutation to subscribed views.
package store

import (
	"log/slog"
	"sync"

	"github.com/jakoblorz/clipdeck/internal/models"
)

// Listener receives each published project snapshot
type Listener func(models.Project)

// Unsubscribe detaches a listener. Calling it more than once is harmless.
type Unsubscribe func()

// Store is the single source of truth for the open project.
//
// Every mutation builds a new clip slice and replaces the snapshot wholesale,
// so a snapshot handed out earlier never changes underneath its holder.
// Listeners run synchronously on the mutating goroutine and must not call
// mutators themselves.
type Store struct {
	logger *slog.Logger

	// publishMu serializes mutate+publish so listeners see mutation order
	publishMu sync.Mutex

	mu        sync.RWMutex
	current   models.Project
	listeners map[int]Listener
	nextID    int
}

// New creates a Store holding the initial empty project
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		logger:    logger.With("component", "store"),
		current:   models.NewProject(),
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns the current project
func (s *Store) Snapshot() models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Subscribe registers a listener for future snapshots. A nil listener is
// ignored.
func (s *Store) Subscribe(listener Listener) Unsubscribe {
	if listener == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// AddClip appends a clip to the end of the clip list
func (s *Store) AddClip(clip models.Clip) {
	s.apply("add_clip", func(p models.Project) models.Project {
		clips := make([]models.Clip, 0, len(p.Clips)+1)
		clips = append(clips, p.Clips...)
		clips = append(clips, clip)
		return models.Project{Title: p.Title, Clips: clips}
	})
}

// RemoveClip drops every clip whose ID matches. A snapshot is published even
// when nothing matched.
func (s *Store) RemoveClip(id string) {
	s.apply("remove_clip", func(p models.Project) models.Project {
		clips := make([]models.Clip, 0, len(p.Clips))
		for _, clip := range p.Clips {
			if clip.ID != id {
				clips = append(clips, clip)
			}
		}
		return models.Project{Title: p.Title, Clips: clips}
	})
}

// ClearClips empties the clip list and keeps the title
func (s *Store) ClearClips() {
	s.apply("clear_clips", func(p models.Project) models.Project {
		return models.Project{Title: p.Title, Clips: []models.Clip{}}
	})
}

// SetTitle renames the project and keeps the clips
func (s *Store) SetTitle(title string) {
	s.apply("set_title", func(p models.Project) models.Project {
		return models.Project{Title: title, Clips: p.Clips}
	})
}

func (s *Store) apply(op string, mutate func(models.Project) models.Project) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	next := mutate(s.current)
	s.current = next
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	s.logger.Debug("project updated", "op", op, "title", next.Title, "clips", len(next.Clips))

	for _, l := range listeners {
		l(next.Clone())
	}
}
