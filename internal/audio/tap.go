package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// sampleTap wraps a beep.Streamer and counts the samples the speaker has
// pulled through it, so the render loop can read a playback clock without
// touching the decoder.
type sampleTap struct {
	Source  beep.Streamer
	samples int
	mu      sync.RWMutex
}

func newSampleTap(src beep.Streamer) *sampleTap {
	return &sampleTap{Source: src}
}

func (t *sampleTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		t.samples += n
		t.mu.Unlock()
	}
	return n, ok
}

func (t *sampleTap) Err() error { return t.Source.Err() }

// count returns the number of samples streamed since the last reset.
func (t *sampleTap) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.samples
}

func (t *sampleTap) reset() {
	t.mu.Lock()
	t.samples = 0
	t.mu.Unlock()
}
