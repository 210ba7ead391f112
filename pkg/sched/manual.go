package sched

import "time"

// Manual is a deterministic Scheduler driven by explicit calls to Advance and
// Frame. It is meant for tests and for replaying input traces.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
	frames []func()
}

type manualTimer struct {
	m    *Manual
	at   time.Duration
	seq  uint64
	f    func()
	done bool
}

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// NextFrame implements Scheduler.
func (m *Manual) NextFrame(f func()) {
	m.frames = append(m.frames, f)
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of timers that have neither fired nor been stopped.
func (m *Manual) Pending() int { return len(m.timers) }

// PendingFrames returns the number of queued frame callbacks.
func (m *Manual) PendingFrames() int { return len(m.frames) }

// Advance moves the clock forward by d and fires every timer that becomes due,
// in deadline order. Timers scheduled by those callbacks fire as well when
// their deadline falls inside the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.nextDue(end)
		if t == nil {
			break
		}
		m.now = t.at
		m.remove(t)
		t.done = true
		t.f()
	}
	m.now = end
}

// Frame runs the frame callbacks queued before the call and returns how many
// ran. Callbacks queued while flushing wait for the next Frame.
func (m *Manual) Frame() int {
	fs := m.frames
	m.frames = nil
	for _, f := range fs {
		f()
	}
	return len(fs)
}

func (m *Manual) nextDue(end time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.at > end {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) remove(t *manualTimer) {
	for i, cur := range m.timers {
		if cur == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
