// Package carousel manages any number of independent, horizontally scrolling
// card carousels. Each carousel instance owns its scroll offset, its bounds and
// its autoplay timer; the Manager routes host input (keys, drags, hover, focus,
// visibility, resize) to the right instance.
//
// All methods must be called from the host loop that drives the Scheduler.
package carousel

import (
	"fmt"
	"time"

	"github.com/germanamz/cinifilme/pkg/gesture"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// Layout and timing defaults.
const (
	DefaultPageSize            = 2
	DefaultCardMarginExtra     = 15
	DefaultPaddingCompensation = 120
	DefaultFallbackItemWidth   = 280
	DefaultAutoplayInterval    = 5 * time.Second
	DefaultSelectPress         = 150 * time.Millisecond
	DefaultResizeDebounce      = 250 * time.Millisecond
)

// Box is the rendered box of an item, in pixels.
type Box struct {
	Width       float64
	MarginRight float64
}

// Item is one rendered card.
type Item interface {
	Box() Box
	Title() string
	// SetPressed toggles the transient "pressed" affordance.
	SetPressed(pressed bool)
}

// Content is the scrolling element that holds a carousel's items.
type Content interface {
	Items() []Item
	// VisibleWidth is the width of the element clipping the content.
	VisibleWidth() float64
	// SetOffset displaces the content px pixels to the left. When animated is
	// false the host must apply the change instantly.
	SetOffset(px float64, animated bool)
}

// Container is a declared carousel as rendered by the host. Prev, Next and
// Progress return nil when the host has no such element.
type Container interface {
	ID() string
	// Content returns the scrolling element, or false when the markup lacks
	// one.
	Content() (Content, bool)
	Prev() surface.Control
	Next() surface.Control
	Progress() surface.Progress
	// Hovered reports whether the pointer is over the container.
	Hovered() bool
	// FocusWithin reports whether keyboard focus is inside the container.
	FocusWithin() bool
}

// PauseMode selects how hover, focus and hidden-page interruptions pause
// autoplay.
type PauseMode int

const (
	// PausePoll keeps the timer ticking at its normal cadence while paused;
	// ticks that find the carousel hovered, focused or hidden do nothing but
	// reschedule.
	PausePoll PauseMode = iota
	// PauseSuspend additionally cancels the timer when the interruption
	// starts. Both modes restart the timer with a full interval when the
	// interruption ends.
	PauseSuspend
)

// String returns the configuration name of the mode.
func (p PauseMode) String() string {
	if p == PauseSuspend {
		return "suspend"
	}
	return "poll"
}

// ParsePauseMode parses "poll" or "suspend". The empty string is "poll".
func ParsePauseMode(s string) (PauseMode, error) {
	switch s {
	case "", "poll":
		return PausePoll, nil
	case "suspend":
		return PauseSuspend, nil
	default:
		return PausePoll, fmt.Errorf("carousel: unknown pause mode %q", s)
	}
}

// Options tunes layout and timing. CardMarginExtra and PaddingCompensation
// are used as given, so zero means no extra width; start from DefaultOptions
// to get the stock geometry. Any other field left at zero takes its default.
type Options struct {
	PageSize            int
	CardMarginExtra     float64
	PaddingCompensation float64
	FallbackItemWidth   float64
	AutoplayInterval    time.Duration
	SwipeThreshold      float64
	SelectPress         time.Duration
	ResizeDebounce      time.Duration
	PauseMode           PauseMode
}

// DefaultOptions returns the stock layout and timing.
func DefaultOptions() Options {
	return Options{
		PageSize:            DefaultPageSize,
		CardMarginExtra:     DefaultCardMarginExtra,
		PaddingCompensation: DefaultPaddingCompensation,
		FallbackItemWidth:   DefaultFallbackItemWidth,
		AutoplayInterval:    DefaultAutoplayInterval,
		SwipeThreshold:      gesture.DefaultThreshold,
		SelectPress:         DefaultSelectPress,
		ResizeDebounce:      DefaultResizeDebounce,
		PauseMode:           PausePoll,
	}
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.FallbackItemWidth <= 0 {
		o.FallbackItemWidth = DefaultFallbackItemWidth
	}
	if o.AutoplayInterval <= 0 {
		o.AutoplayInterval = DefaultAutoplayInterval
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = gesture.DefaultThreshold
	}
	if o.SelectPress <= 0 {
		o.SelectPress = DefaultSelectPress
	}
	if o.ResizeDebounce <= 0 {
		o.ResizeDebounce = DefaultResizeDebounce
	}
	return o
}

// State is a read-only snapshot of one instance.
type State struct {
	ID          string
	ItemCount   int
	ItemWidth   float64
	MaxOffset   float64
	Offset      float64
	PageIndex   int
	Autoplaying bool
}
