package timecode

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "00:00"},
		{name: "one minute five", in: 65 * time.Second, want: "01:05"},
		{name: "last second of the hour", in: 3599 * time.Second, want: "59:59"},
		{name: "one hour wraps", in: 3600 * time.Second, want: "00:00"},
		{name: "hour and a bit wraps", in: time.Hour + 90*time.Second, want: "01:30"},
		{name: "sub-second truncates", in: 9*time.Second + 999*time.Millisecond, want: "00:09"},
		{name: "ten second clip", in: 10 * time.Second, want: "00:10"},
		{name: "negative clamps to zero", in: -5 * time.Second, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00"},
		{in: 3599 * time.Second, want: "59:59"},
		{in: time.Hour, want: "1:00:00"},
		{in: 2*time.Hour + 5*time.Minute + 7*time.Second, want: "2:05:07"},
		{in: 27 * time.Hour, want: "27:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := FormatClock(tt.in); got != tt.want {
				t.Errorf("FormatClock(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
