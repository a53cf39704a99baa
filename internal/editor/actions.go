// Package editor turns user intents into store mutations: synthetic clips
// from the add buttons, imports of real files, removal and renaming.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/logging"
	"github.com/jakoblorz/clipdeck/internal/media"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/jakoblorz/clipdeck/internal/store"
)

// DefaultClipDuration is the length of clips created by the add buttons
const DefaultClipDuration = 10 * time.Second

var (
	ErrMissingFile      = errors.New("file does not exist")
	ErrUnsupportedMedia = errors.New("unsupported media file")
)

// Actions issues the editor's commands against a store
type Actions struct {
	store        *store.Store
	fs           filesystem.FileSystem
	prober       media.Prober
	newID        IDGenerator
	clipDuration time.Duration
	logger       *slog.Logger

	videoCount int
	audioCount int
}

// Option configures Actions
type Option func(*Actions)

// WithProber enables probing imported files. Without one, imports get the
// default clip duration.
func WithProber(p media.Prober) Option {
	return func(a *Actions) {
		a.prober = p
	}
}

// WithClipDuration overrides DefaultClipDuration
func WithClipDuration(d time.Duration) Option {
	return func(a *Actions) {
		if d > 0 {
			a.clipDuration = d
		}
	}
}

// WithIDGenerator replaces the nanoid based clip IDs
func WithIDGenerator(gen IDGenerator) Option {
	return func(a *Actions) {
		a.newID = gen
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(a *Actions) {
		a.logger = logger
	}
}

// NewActions creates Actions bound to s
func NewActions(s *store.Store, fs filesystem.FileSystem, options ...Option) *Actions {
	a := &Actions{
		store:        s,
		fs:           fs,
		newID:        generateClipID,
		clipDuration: DefaultClipDuration,
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(a)
	}

	a.logger = logging.WithComponent(a.logger, "editor")
	return a
}

// ClipDuration returns the length given to synthetic clips
func (a *Actions) ClipDuration() time.Duration {
	return a.clipDuration
}

// AddVideo appends a placeholder video clip
func (a *Actions) AddVideo() (models.Clip, error) {
	a.videoCount++
	return a.addSynthetic(fmt.Sprintf("video_%03d.mp4", a.videoCount), models.MediaVideo)
}

// AddAudio appends a placeholder audio clip
func (a *Actions) AddAudio() (models.Clip, error) {
	a.audioCount++
	return a.addSynthetic(fmt.Sprintf("audio_%03d.mp3", a.audioCount), models.MediaAudio)
}

func (a *Actions) addSynthetic(name string, mediaType models.MediaType) (models.Clip, error) {
	id, err := a.newID()
	if err != nil {
		return models.Clip{}, fmt.Errorf("failed to generate clip ID: %w", err)
	}

	clip, err := models.NewClip(id, name, 0, a.clipDuration, mediaType)
	if err != nil {
		return models.Clip{}, err
	}

	a.store.AddClip(clip)
	logging.WithClipID(a.logger, clip.ID).Info("clip added", "type", mediaType, "path", name)
	return clip, nil
}

// Import probes path and appends it as a clip covering the whole file.
// When probing fails the clip falls back to the default duration.
func (a *Actions) Import(path string) (models.Clip, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return models.Clip{}, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if info.IsDir() {
		return models.Clip{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedMedia, path)
	}

	mediaType, ok := media.Classify(path)
	if !ok {
		return models.Clip{}, fmt.Errorf("%w: %s", ErrUnsupportedMedia, path)
	}

	duration := a.clipDuration
	if a.prober != nil {
		md, err := a.prober.Probe(path)
		if err != nil {
			a.logger.Warn("could not probe media, using default duration", "path", path, "error", err)
		} else {
			mediaType = md.Type
			duration = md.Duration
		}
	}

	id, err := a.newID()
	if err != nil {
		return models.Clip{}, fmt.Errorf("failed to generate clip ID: %w", err)
	}

	clip, err := models.NewClip(id, path, 0, duration, mediaType)
	if err != nil {
		return models.Clip{}, fmt.Errorf("failed to import %s: %w", path, err)
	}

	a.store.AddClip(clip)
	logging.WithClipID(a.logger, clip.ID).Info("clip imported", "type", mediaType, "path", path, "duration", duration)
	return clip, nil
}

// ImportAll imports paths in order, expanding directories into the media
// files they contain. It stops at the first failure.
func (a *Actions) ImportAll(paths []string) ([]models.Clip, error) {
	var files []string
	for _, path := range paths {
		info, err := a.fs.Stat(path)
		if err == nil && info.IsDir() {
			entries, err := media.NewScanner(a.fs).Scan(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", path, err)
			}
			for _, entry := range entries {
				files = append(files, entry.Path)
			}
			continue
		}
		files = append(files, path)
	}

	clips := make([]models.Clip, 0, len(files))
	for _, file := range files {
		clip, err := a.Import(file)
		if err != nil {
			return clips, err
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// Remove deletes every clip with the given ID
func (a *Actions) Remove(id string) {
	a.store.RemoveClip(id)
	logging.WithClipID(a.logger, id).Info("clip removed")
}

// Clear removes all clips
func (a *Actions) Clear() {
	a.store.ClearClips()
	a.logger.Info("clips cleared")
}

// Rename sets the project title, trimmed of surrounding whitespace. Blank
// titles are ignored.
func (a *Actions) Rename(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		a.logger.Warn("ignoring blank project title")
		return
	}
	a.store.SetTitle(title)
	a.logger.Info("project renamed", "title", title)
}
