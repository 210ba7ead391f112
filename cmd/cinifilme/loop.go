package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/cinifilme/pkg/sched"
)

// frameDelay approximates one paint of the Bubble Tea renderer.
const frameDelay = time.Second / 60

// loop binds a sched.Queue to the Bubble Tea event loop. Every callback the
// queue fires runs inside Update.
type loop struct {
	q *sched.Queue
}

func newLoop() *loop {
	return &loop{q: sched.NewQueue()}
}

// flush turns the queue's outstanding timer and frame requests into
// commands. It must be called at the end of every Update.
func (l *loop) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range l.q.Requests() {
		id := r.ID
		cmds = append(cmds, tea.Tick(r.Delay, func(time.Time) tea.Msg { return timerMsg{id: id} }))
	}
	if l.q.TakeFrameRequest() {
		cmds = append(cmds, tea.Tick(frameDelay, func(time.Time) tea.Msg { return frameMsg{} }))
	}
	return tea.Batch(cmds...)
}

// fire runs the timer id. Stopped timers are ignored.
func (l *loop) fire(id uint64) bool { return l.q.Fire(id) }

// frame runs the queued frame callbacks.
func (l *loop) frame() int { return l.q.Frame() }
