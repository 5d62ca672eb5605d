// Package reveal tracks how many bars are visible for a given playback time.
package reveal

// Event records a bar becoming visible.
type Event struct {
	Index  int     // 0-based bar index
	Target float64 // configured threshold, seconds
	At     float64 // elapsed playback time that crossed it, seconds
}

// Tracker advances a revealed count against a fixed list of thresholds.
// The thresholds are expected to increase but this is not checked: an
// entry smaller than its predecessor is revealed together with it.
type Tracker struct {
	thresholds []float64
	revealed   int
}

func New(thresholds []float64) *Tracker {
	ts := make([]float64, len(thresholds))
	copy(ts, thresholds)
	return &Tracker{thresholds: ts}
}

// Advance reveals every pending bar whose threshold is <= t, scanning
// forward from the current count only. It returns the newly revealed bars.
// A clock that moved backwards is not detected; callers Reset on restart.
func (tr *Tracker) Advance(t float64) []Event {
	var events []Event
	for tr.revealed < len(tr.thresholds) && t >= tr.thresholds[tr.revealed] {
		events = append(events, Event{
			Index:  tr.revealed,
			Target: tr.thresholds[tr.revealed],
			At:     t,
		})
		tr.revealed++
	}
	return events
}

// Reset hides every bar.
func (tr *Tracker) Reset() { tr.revealed = 0 }

func (tr *Tracker) Revealed() int { return tr.revealed }

func (tr *Tracker) Len() int { return len(tr.thresholds) }

// Done reports whether every bar is visible.
func (tr *Tracker) Done() bool { return tr.revealed == len(tr.thresholds) }
