// Package strip defines the capability shared by every timed, interruptible,
// navigable strip of items. The pixel-offset carousel and the discrete-index
// hero slider both implement it, so hosts can route input uniformly.
package strip

// Strip is a navigable strip with autoplay.
type Strip interface {
	// Advance moves one step forward.
	Advance()
	// Retreat moves one step backward.
	Retreat()
	// Pause suspends autoplay.
	Pause()
	// Resume restarts autoplay with a full fresh interval.
	Resume()
	// RecomputeBounds re-derives bounds from the current layout.
	RecomputeBounds()
}

// Direction is a navigation direction.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Step moves s one step in dir. A zero direction does nothing.
func Step(s Strip, dir Direction) {
	switch {
	case dir > 0:
		s.Advance()
	case dir < 0:
		s.Retreat()
	}
}
