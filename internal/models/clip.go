package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// ErrInvalidClip is returned when a clip fails validation
var ErrInvalidClip = errors.New("invalid clip")

// Clip describes one trimmed media segment on the timeline.
//
// Clips are values: once created they are never edited in place, the project
// only ever replaces its whole clip list.
type Clip struct {
	// ID is assigned by the creator and never reassigned
	ID string `json:"id"`

	// FilePath references the source media. Nothing checks that it exists.
	FilePath string `json:"filePath"`

	// Start and End mark the trimmed region within the source
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`

	// Type is fixed at construction
	Type MediaType `json:"type"`
}

// NewClip creates a validated Clip
func NewClip(id, filePath string, start, end time.Duration, mediaType MediaType) (Clip, error) {
	clip := Clip{
		ID:       id,
		FilePath: filePath,
		Start:    start,
		End:      end,
		Type:     mediaType,
	}
	if err := clip.Validate(); err != nil {
		return Clip{}, err
	}
	return clip, nil
}

// Validate checks the clip's identity, media type and time range
func (c Clip) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidClip)
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidClip, c.Type)
	}
	if c.Start < 0 {
		return fmt.Errorf("%w: start %s is negative", ErrInvalidClip, c.Start)
	}
	if c.End < c.Start {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidClip, c.End, c.Start)
	}
	return nil
}

// Duration returns the length of the trimmed region
func (c Clip) Duration() time.Duration {
	return c.End - c.Start
}

// Name returns the base name of the clip's file
func (c Clip) Name() string {
	if c.FilePath == "" {
		return c.ID
	}
	return filepath.Base(c.FilePath)
}
