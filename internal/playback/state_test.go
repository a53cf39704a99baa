package playback

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState_PlayPauseStop(t *testing.T) {
	s := NewState()
	require.False(t, s.IsPlaying())
	require.Equal(t, 1.0, s.Speed())

	s = s.Play()
	require.True(t, s.IsPlaying())

	s = s.Toggle()
	require.False(t, s.IsPlaying())

	s = s.Toggle().Faster()
	require.True(t, s.IsPlaying())
	require.Equal(t, 1.25, s.Speed())

	s = s.Pause()
	require.False(t, s.IsPlaying())
	require.Equal(t, 1.25, s.Speed())

	s = s.Play().Stop()
	require.False(t, s.IsPlaying())
	require.Equal(t, 1.0, s.Speed())
}

func TestState_SpeedIsClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0.1},
		{in: -3, want: 0.1},
		{in: 0.5, want: 0.5},
		{in: 4, want: 4},
		{in: 16, want: 4},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NewState().SetSpeed(tt.in).Speed(), "SetSpeed(%v)", tt.in)
	}

	s := NewState().SetSpeed(4)
	require.Equal(t, 4.0, s.Faster().Speed())

	s = NewState().SetSpeed(0.2)
	require.Equal(t, 0.1, s.Slower().Speed())
}
