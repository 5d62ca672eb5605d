package reveal

import "testing"

var barTimes = []float64{1.48, 2.67, 3.35, 3.82, 4.34, 4.90, 5.35, 5.72, 6.09, 6.54}

func countAtOrBelow(ts []float64, t float64) int {
	n := 0
	for _, v := range ts {
		if v <= t {
			n++
		}
	}
	return n
}

func TestAdvanceSequence(t *testing.T) {
	tr := New(barTimes)
	times := []float64{0.0, 1.0, 1.48, 2.0, 2.67, 3.4, 10}
	want := []int{0, 0, 1, 1, 2, 3, 10}
	for i, at := range times {
		tr.Advance(at)
		if got := tr.Revealed(); got != want[i] {
			t.Fatalf("t=%v: expected %d revealed, got %d", at, want[i], got)
		}
	}
	if !tr.Done() {
		t.Fatal("expected tracker to be done")
	}
}

func TestAdvanceMatchesThresholdCount(t *testing.T) {
	for step := 0; step <= 80; step++ {
		at := float64(step) * 0.1
		tr := New(barTimes)
		tr.Advance(at)
		if got, want := tr.Revealed(), countAtOrBelow(barTimes, at); got != want {
			t.Fatalf("t=%v: expected %d revealed, got %d", at, want, got)
		}
	}
}

func TestAdvanceReturnsEvents(t *testing.T) {
	tr := New(barTimes)
	events := tr.Advance(3.0)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Index != 0 || events[0].Target != 1.48 || events[0].At != 3.0 {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1].Index != 1 || events[1].Target != 2.67 {
		t.Fatalf("unexpected second event %+v", events[1])
	}
	if again := tr.Advance(3.0); len(again) != 0 {
		t.Fatalf("expected no events when re-evaluating the same time, got %v", again)
	}
	if tr.Revealed() != 2 {
		t.Fatalf("expected re-evaluation to keep 2 revealed, got %d", tr.Revealed())
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	tr := New(barTimes)
	tr.Advance(5.0)
	before := tr.Revealed()
	// A clock that went backwards without a reset leaves the count alone.
	tr.Advance(0.5)
	if tr.Revealed() != before {
		t.Fatalf("expected %d revealed after a backwards clock, got %d", before, tr.Revealed())
	}
}

func TestReset(t *testing.T) {
	for _, at := range []float64{0, 1.5, 4, 100} {
		tr := New(barTimes)
		tr.Advance(at)
		tr.Reset()
		if tr.Revealed() != 0 {
			t.Fatalf("t=%v: expected reset to hide every bar, got %d", at, tr.Revealed())
		}
	}
}

func TestOutOfOrderThresholdIsLenient(t *testing.T) {
	tr := New([]float64{1.0, 3.0, 2.0, 4.0})
	tr.Advance(2.5)
	if tr.Revealed() != 1 {
		t.Fatalf("expected scan to stall behind 3.0, got %d", tr.Revealed())
	}
	tr.Advance(3.0)
	if tr.Revealed() != 3 {
		t.Fatalf("expected out-of-order bar to follow its predecessor, got %d", tr.Revealed())
	}
}

func TestNewCopiesThresholds(t *testing.T) {
	ts := []float64{1, 2}
	tr := New(ts)
	ts[0] = 100
	tr.Advance(1)
	if tr.Revealed() != 1 {
		t.Fatalf("expected tracker to keep its own thresholds, got %d", tr.Revealed())
	}
	if tr.Len() != 2 {
		t.Fatalf("expected 2 thresholds, got %d", tr.Len())
	}
}

func TestEmptyTracker(t *testing.T) {
	tr := New(nil)
	if events := tr.Advance(10); len(events) != 0 || !tr.Done() {
		t.Fatalf("expected an empty tracker to be done with no events, got %v", events)
	}
}
