// Package sched abstracts the timer and frame primitives of a single-threaded
// host event loop. Every callback handed to a Scheduler runs on that loop, so
// callers never need locking around the state their callbacks mutate.
package sched

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler schedules callbacks on the host loop.
type Scheduler interface {
	// AfterFunc runs f once after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// NextFrame runs f after the host has committed (painted) the current
	// state at least once.
	NextFrame(f func())
}

// Every runs f every d until the returned Timer is stopped. The next tick is
// scheduled before f runs, so f may stop its own ticker.
func Every(s Scheduler, d time.Duration, f func()) Timer {
	t := &ticker{s: s, d: d, f: f}
	t.schedule()
	return t
}

type ticker struct {
	s       Scheduler
	d       time.Duration
	f       func()
	cur     Timer
	stopped bool
}

func (t *ticker) schedule() {
	t.cur = t.s.AfterFunc(t.d, t.fire)
}

func (t *ticker) fire() {
	if t.stopped {
		return
	}
	t.schedule()
	t.f()
}

func (t *ticker) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.cur != nil {
		t.cur.Stop()
	}
	return true
}

// Debouncer collapses bursts of triggers into a single call of f that runs
// once a quiet period has passed without further triggers.
type Debouncer struct {
	s       Scheduler
	quiet   time.Duration
	f       func()
	pending Timer
}

// NewDebouncer creates a Debouncer that runs f after quiet.
func NewDebouncer(s Scheduler, quiet time.Duration, f func()) *Debouncer {
	return &Debouncer{s: s, quiet: quiet, f: f}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.Cancel()
	d.pending = d.s.AfterFunc(d.quiet, func() {
		d.pending = nil
		d.f()
	})
}

// Cancel drops a pending call, if any.
func (d *Debouncer) Cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
