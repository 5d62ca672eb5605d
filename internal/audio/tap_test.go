package audio

import (
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestSampleTapCountsStreamedSamples(t *testing.T) {
	tap := newSampleTap(beep.Silence(100))
	buf := make([][2]float64, 40)

	n, ok := tap.Stream(buf)
	if n != 40 || !ok {
		t.Fatalf("expected 40 samples, got %d (ok=%v)", n, ok)
	}
	tap.Stream(buf)
	tap.Stream(buf)
	if got := tap.count(); got != 100 {
		t.Fatalf("expected count to stop at the source length 100, got %d", got)
	}

	tap.reset()
	if got := tap.count(); got != 0 {
		t.Fatalf("expected reset count 0, got %d", got)
	}
}

func TestElapsedFromSamples(t *testing.T) {
	rate := beep.SampleRate(44100)
	if got := elapsedSeconds(rate, 44100*3/2); got != 1.5 {
		t.Fatalf("expected 1.5s, got %v", got)
	}
	if got := elapsedSeconds(rate, 0); got != 0 {
		t.Fatalf("expected 0s, got %v", got)
	}
	if d := rate.D(441); d != 10*time.Millisecond {
		t.Fatalf("expected 10ms, got %v", d)
	}
}

func TestClockFunc(t *testing.T) {
	var c Clock = ClockFunc(func() float64 { return 2.5 })
	if c.ElapsedSeconds() != 2.5 {
		t.Fatalf("expected 2.5, got %v", c.ElapsedSeconds())
	}
}
