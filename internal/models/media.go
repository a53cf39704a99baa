package models

import (
	"fmt"
)

// MediaType represents the kind of media a clip references
type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// IsValid checks if the media type is valid
func (m MediaType) IsValid() bool {
	switch m {
	case MediaVideo, MediaAudio:
		return true
	default:
		return false
	}
}

// String returns the string representation of MediaType
func (m MediaType) String() string {
	return string(m)
}

// ParseMediaType parses a string into a MediaType
func ParseMediaType(s string) (MediaType, error) {
	mt := MediaType(s)
	if !mt.IsValid() {
		return "", fmt.Errorf("invalid media type: %s (must be video or audio)", s)
	}
	return mt, nil
}
