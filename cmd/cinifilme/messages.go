package main

import "time"

// timerMsg wakes the loop for the scheduler timer id.
type timerMsg struct {
	id uint64
}

// frameMsg flushes the scheduler's queued frame callbacks once the current
// state has been painted.
type frameMsg struct{}

// tickMsg drives time-based rendering: offset tweens, the hero progress fill
// and the promo marquee.
type tickMsg time.Time
