// Package gesture tracks horizontal drag gestures (touch or pointer drags) and
// turns them into paging decisions.
package gesture

import (
	"math"

	"github.com/germanamz/cinifilme/pkg/strip"
)

// DefaultThreshold is the minimum net horizontal displacement, in pixels, for a
// drag to count as a swipe.
const DefaultThreshold = 50

// Drag tracks one gesture from start to end. The zero value uses
// DefaultThreshold.
type Drag struct {
	Threshold float64

	startX, startY float64
	dragging       bool
}

// Start begins tracking at (x, y).
func (d *Drag) Start(x, y float64) {
	d.startX, d.startY = x, y
	d.dragging = true
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool { return d.dragging }

// Move reports whether the gesture is claimed as horizontal, in which case the
// host must suppress its default (vertical) scrolling.
func (d *Drag) Move(x, y float64) bool {
	if !d.dragging {
		return false
	}
	dx := d.startX - x
	dy := d.startY - y
	return math.Abs(dx) > math.Abs(dy)
}

// End finishes the gesture at x. It returns Forward when the content was
// dragged left past the threshold, Backward when dragged right past it, and 0
// for sub-threshold gestures or when no gesture was in progress.
func (d *Drag) End(x float64) strip.Direction {
	if !d.dragging {
		return 0
	}
	d.dragging = false

	dx := d.startX - x
	if math.Abs(dx) <= d.threshold() {
		return 0
	}
	if dx > 0 {
		return strip.Forward
	}
	return strip.Backward
}

// Cancel abandons the gesture.
func (d *Drag) Cancel() { d.dragging = false }

func (d *Drag) threshold() float64 {
	if d.Threshold <= 0 {
		return DefaultThreshold
	}
	return d.Threshold
}
