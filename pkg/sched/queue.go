package sched

import "time"

// Request asks the host loop to call Queue.Fire(ID) once Delay has elapsed.
type Request struct {
	ID    uint64
	Delay time.Duration
}

// Queue is a Scheduler for hosts that own their event loop and can only be
// woken up by messages (for example a Bubble Tea program). Scheduling records a
// Request; the host drains requests after each update, arranges a wake-up for
// each one and calls Fire from inside the loop. Queue is not safe for
// concurrent use: it lives entirely on the host loop.
type Queue struct {
	nextID         uint64
	timers         map[uint64]func()
	requests       []Request
	frames         []func()
	frameRequested bool
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{timers: make(map[uint64]func())}
}

// AfterFunc implements Scheduler.
func (q *Queue) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	q.nextID++
	id := q.nextID
	q.timers[id] = f
	q.requests = append(q.requests, Request{ID: id, Delay: d})
	return queueTimer{q: q, id: id}
}

// NextFrame implements Scheduler.
func (q *Queue) NextFrame(f func()) {
	q.frames = append(q.frames, f)
}

// Requests returns the wake-ups scheduled since the previous call.
func (q *Queue) Requests() []Request {
	reqs := q.requests
	q.requests = nil
	return reqs
}

// TakeFrameRequest reports whether the host must arrange a frame wake-up.
// It returns true at most once per batch of queued frame callbacks.
func (q *Queue) TakeFrameRequest() bool {
	if len(q.frames) == 0 || q.frameRequested {
		return false
	}
	q.frameRequested = true
	return true
}

// Fire runs the callback registered under id unless it was stopped or already
// fired. It reports whether a callback ran.
func (q *Queue) Fire(id uint64) bool {
	f, ok := q.timers[id]
	if !ok {
		return false
	}
	delete(q.timers, id)
	f()
	return true
}

// Frame runs the frame callbacks queued before the call and returns how many
// ran.
func (q *Queue) Frame() int {
	fs := q.frames
	q.frames = nil
	q.frameRequested = false
	for _, f := range fs {
		f()
	}
	return len(fs)
}

// Pending returns the number of live timers.
func (q *Queue) Pending() int { return len(q.timers) }

type queueTimer struct {
	q  *Queue
	id uint64
}

func (t queueTimer) Stop() bool {
	if _, ok := t.q.timers[t.id]; !ok {
		return false
	}
	delete(t.q.timers, t.id)
	return true
}
