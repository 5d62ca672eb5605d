package audio

// Clock reports how far playback has progressed.
type Clock interface {
	ElapsedSeconds() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) ElapsedSeconds() float64 { return f() }
