// Package playback tracks the transport controls' state. Nothing is decoded
// or played; the state only drives what the transport bar shows.
package playback

const (
	MinSpeed     = 0.1
	MaxSpeed     = 4.0
	DefaultSpeed = 1.0
	SpeedStep    = 0.25
)

// State is the transport state
type State struct {
	playing bool
	speed   float64
}

// NewState creates a stopped transport at normal speed
func NewState() State {
	return State{speed: DefaultSpeed}
}

// IsPlaying reports whether play was pressed last
func (s State) IsPlaying() bool {
	return s.playing
}

// Speed returns the playback rate multiplier
func (s State) Speed() float64 {
	return s.speed
}

// Play starts playback
func (s State) Play() State {
	s.playing = true
	return s
}

// Pause halts playback
func (s State) Pause() State {
	s.playing = false
	return s
}

// Toggle flips between playing and paused
func (s State) Toggle() State {
	s.playing = !s.playing
	return s
}

// Stop halts playback and restores normal speed
func (s State) Stop() State {
	s.playing = false
	s.speed = DefaultSpeed
	return s
}

// SetSpeed sets the rate clamped to [MinSpeed, MaxSpeed]
func (s State) SetSpeed(speed float64) State {
	s.speed = min(max(speed, MinSpeed), MaxSpeed)
	return s
}

// Faster raises the rate by one step
func (s State) Faster() State {
	return s.SetSpeed(s.speed + SpeedStep)
}

// Slower lowers the rate by one step
func (s State) Slower() State {
	return s.SetSpeed(s.speed - SpeedStep)
}
