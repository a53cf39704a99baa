// Package media inspects source files before they become clips: extension
// classification, ffprobe metadata, directory scans and text reports.
package media

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jakoblorz/clipdeck/internal/models"
)

// Metadata describes a probed media file
type Metadata struct {
	Path       string           `json:"path"`
	Type       models.MediaType `json:"type"`
	Duration   time.Duration    `json:"-"`
	Width      int              `json:"width,omitempty"`
	Height     int              `json:"height,omitempty"`
	VideoCodec string           `json:"videoCodec,omitempty"`
	AudioCodec string           `json:"audioCodec,omitempty"`
	Size       int64            `json:"size"`
}

// Name returns the base name of the file
func (m *Metadata) Name() string {
	return filepath.Base(m.Path)
}

// IsVideo reports whether the file carries a video stream
func (m *Metadata) IsVideo() bool {
	return m.Type == models.MediaVideo
}

// Prober extracts metadata from a media file
type Prober interface {
	Probe(path string) (*Metadata, error)
}

var extensions = map[string]models.MediaType{
	".mp4":  models.MediaVideo,
	".mov":  models.MediaVideo,
	".mkv":  models.MediaVideo,
	".webm": models.MediaVideo,
	".avi":  models.MediaVideo,
	".m4v":  models.MediaVideo,
	".mp3":  models.MediaAudio,
	".wav":  models.MediaAudio,
	".aac":  models.MediaAudio,
	".flac": models.MediaAudio,
	".ogg":  models.MediaAudio,
	".m4a":  models.MediaAudio,
}

// Classify guesses the media type from the file extension
func Classify(path string) (models.MediaType, bool) {
	mt, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return mt, ok
}
