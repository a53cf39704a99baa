package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		input   string
		want    MediaType
		wantErr bool
	}{
		{input: "video", want: MediaVideo},
		{input: "audio", want: MediaAudio},
		{input: "image", wantErr: true},
		{input: "", wantErr: true},
		{input: "Video", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMediaType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMediaType(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMediaType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMediaType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewClip(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		start   time.Duration
		end     time.Duration
		typ     MediaType
		wantErr bool
	}{
		{name: "valid video", id: "a", start: 0, end: 10 * time.Second, typ: MediaVideo},
		{name: "zero length", id: "b", start: 5 * time.Second, end: 5 * time.Second, typ: MediaAudio},
		{name: "empty id", id: "", start: 0, end: time.Second, typ: MediaVideo, wantErr: true},
		{name: "end before start", id: "c", start: 3 * time.Second, end: time.Second, typ: MediaVideo, wantErr: true},
		{name: "negative start", id: "d", start: -time.Second, end: time.Second, typ: MediaVideo, wantErr: true},
		{name: "unknown type", id: "e", start: 0, end: time.Second, typ: MediaType("text"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip, err := NewClip(tt.id, "media/file.mp4", tt.start, tt.end, tt.typ)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClip) {
					t.Errorf("NewClip() error = %v, want ErrInvalidClip", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClip() unexpected error: %v", err)
			}
			if clip.ID != tt.id || clip.Start != tt.start || clip.End != tt.end || clip.Type != tt.typ {
				t.Errorf("NewClip() = %+v, fields do not match input", clip)
			}
		})
	}
}

func TestClip_DurationAndName(t *testing.T) {
	clip := Clip{ID: "x", FilePath: "/footage/day1/take_03.mov", Start: 2 * time.Second, End: 12 * time.Second, Type: MediaVideo}

	if got := clip.Duration(); got != 10*time.Second {
		t.Errorf("Duration() = %s, want 10s", got)
	}
	if got := clip.Name(); got != "take_03.mov" {
		t.Errorf("Name() = %q, want %q", got, "take_03.mov")
	}

	noPath := Clip{ID: "clip_only"}
	if got := noPath.Name(); got != "clip_only" {
		t.Errorf("Name() without path = %q, want %q", got, "clip_only")
	}
}
