package editor

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// IDGenerator produces clip IDs
type IDGenerator func() (string, error)

// generateClipID generates an ID like "clip_V1StGXR8_Z"
func generateClipID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, 10)
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}
	return "clip_" + id, nil
}
