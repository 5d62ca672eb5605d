// Package audio plays the clip being timed and exposes its playback clock.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned by Open for files it cannot decode.
var ErrUnsupported = errors.New("unsupported file type")

// Player owns a single decoded clip and the speaker it plays on.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *sampleTap

	speakerReady bool
}

// Open decodes path without starting playback.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &Player{
		file:     f,
		streamer: streamer,
		format:   format,
		tap:      newSampleTap(streamer),
	}, nil
}

// Play initializes the speaker at the clip's sample rate and starts it.
func (p *Player) Play() error {
	if !p.speakerReady {
		bufferSize := p.format.SampleRate.N(time.Second / 20)
		if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.speakerReady = true
	}
	speaker.Play(p.tap)
	return nil
}

// Restart stops playback and plays the clip again from the beginning.
func (p *Player) Restart() error {
	// Clear takes the speaker lock itself.
	speaker.Clear()

	speaker.Lock()
	err := p.streamer.Seek(0)
	p.tap.reset()
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	return p.Play()
}

// ElapsedSeconds returns the playback position in seconds. It does not block
// on the speaker; the count only moves when the speaker pulls samples.
func (p *Player) ElapsedSeconds() float64 {
	return elapsedSeconds(p.format.SampleRate, p.tap.count())
}

// Duration returns the clip length.
func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close stops playback and releases the decoder and file.
func (p *Player) Close() error {
	if p.speakerReady {
		speaker.Clear()
		speaker.Close()
		p.speakerReady = false
	}
	err := p.streamer.Close()
	if cerr := p.file.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}

func elapsedSeconds(rate beep.SampleRate, samples int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(samples) / float64(rate)
}
