// Package session drives bar reveals from the playback clock.
package session

import (
	"fmt"

	"github.com/iburimskiy/solar-charge/internal/audio"
	"github.com/iburimskiy/solar-charge/internal/devlog"
	"github.com/iburimskiy/solar-charge/internal/reveal"
)

// Playback is the clip being timed.
type Playback interface {
	audio.Clock
	Restart() error
}

type Command int

const (
	Mark Command = iota
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case Mark:
		return "mark"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

type State int

const (
	Playing State = iota
	Stopped
)

// Session is the state shared by the update and draw steps of one run.
type Session struct {
	playback Playback
	tracker  *reveal.Tracker
	log      *devlog.Logger

	state   State
	elapsed float64
	marks   []float64
}

// New returns a session that is already playing; playback must have been
// started by the caller.
func New(playback Playback, thresholds []float64, log *devlog.Logger) *Session {
	return &Session{
		playback: playback,
		tracker:  reveal.New(thresholds),
		log:      log,
	}
}

// Frame runs one update step: it samples the clock, applies cmds in order
// and reveals any bar whose threshold has passed. It returns false once the
// session has stopped. A failed restart is returned as an error and also
// stops the session.
func (s *Session) Frame(cmds []Command) (bool, error) {
	if s.state == Stopped {
		return false, nil
	}
	t := s.playback.ElapsedSeconds()

	for _, cmd := range cmds {
		switch cmd {
		case Mark:
			s.log.Marked(t)
			s.marks = append(s.marks, t)
		case Restart:
			s.log.Restarting()
			if err := s.playback.Restart(); err != nil {
				s.state = Stopped
				return false, fmt.Errorf("restart playback: %w", err)
			}
			s.tracker.Reset()
			t = s.playback.ElapsedSeconds()
		case Quit:
			s.Stop()
			return false, nil
		}
	}

	s.elapsed = t
	for _, ev := range s.tracker.Advance(t) {
		s.log.Revealed(ev.Index+1, ev.At, ev.Target)
	}
	return true, nil
}

// Revealed returns the number of visible bars.
func (s *Session) Revealed() int { return s.tracker.Revealed() }

// Bars returns the number of configured bars.
func (s *Session) Bars() int { return s.tracker.Len() }

// Elapsed returns the clock value sampled by the last frame.
func (s *Session) Elapsed() float64 { return s.elapsed }

// LastMark returns the most recent marked time.
func (s *Session) LastMark() (float64, bool) {
	if len(s.marks) == 0 {
		return 0, false
	}
	return s.marks[len(s.marks)-1], true
}

func (s *Session) State() State { return s.state }

// Stop ends the session as a Quit command would. Later frames do nothing.
func (s *Session) Stop() { s.state = Stopped }

// Loop runs frames until a Quit command arrives, a frame fails, or stop
// reports true. input supplies the commands for each frame.
func Loop(s *Session, input func() []Command, stop func(*Session) bool) error {
	for !stop(s) {
		running, err := s.Frame(input())
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
	return nil
}
