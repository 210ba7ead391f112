// Package hero implements the discrete-index hero slider: one active slide at a
// time, a dot per slide and a progress fill that runs from empty to full over
// each autoplay interval.
package hero

import (
	"fmt"
	"time"

	"github.com/germanamz/cinifilme/pkg/gesture"
	"github.com/germanamz/cinifilme/pkg/sched"
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
	"go.uber.org/zap"
)

// DefaultInterval is the autoplay period.
const DefaultInterval = 5 * time.Second

// DotHost holds the dot indicators.
type DotHost interface {
	// Clear removes every dot.
	Clear()
	// AddDot appends a dot with an accessible label. The host calls onClick
	// when the dot is activated.
	AddDot(label string, onClick func()) surface.Toggle
}

// Fill is the progress fill element.
type Fill interface {
	// SetTransition sets how long width changes take to animate. Zero means
	// no transition: the fill stays where it is currently painted.
	SetTransition(d time.Duration)
	// SetWidth sets the target width in percent.
	SetWidth(percent float64)
}

// Container is the rendered hero.
type Container interface {
	Slides() []surface.Toggle
	// Dots returns the dot host, or nil.
	Dots() DotHost
	// Fill returns the progress fill, or nil.
	Fill() Fill
}

// Options tunes a Slider. Zero fields take defaults.
type Options struct {
	Interval       time.Duration
	SwipeThreshold float64
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = gesture.DefaultThreshold
	}
	return o
}

// Slider rotates the hero slides. It must only be used from the scheduler's
// loop.
type Slider struct {
	opts Options
	s    sched.Scheduler
	doc  surface.Document
	log  *zap.Logger

	slides []surface.Toggle
	dots   []surface.Toggle
	host   DotHost
	fill   Fill

	current int
	timer   sched.Timer
	// gen invalidates deferred progress commits queued before the latest
	// reset or stop.
	gen  uint64
	drag gesture.Drag
}

var _ strip.Strip = (*Slider)(nil)

// New creates a Slider over c. It does nothing until Init is called.
func New(s sched.Scheduler, doc surface.Document, c Container, opts Options, log *zap.Logger) *Slider {
	if log == nil {
		log = zap.NewNop()
	}
	if doc == nil {
		doc = &surface.StaticDocument{}
	}
	opts = opts.withDefaults()
	h := &Slider{opts: opts, s: s, doc: doc, log: log}
	h.drag.Threshold = opts.SwipeThreshold
	if c != nil {
		h.slides = c.Slides()
		h.host = c.Dots()
		h.fill = c.Fill()
	}
	return h
}

// Init builds the dots, marks the first slide active and starts autoplay.
// A hero without slides stays disabled.
func (h *Slider) Init() {
	if !h.enabled() {
		h.log.Warn("hero has no slides, slider disabled")
		return
	}
	h.buildDots()
	h.update()
	h.Start()
}

func (h *Slider) enabled() bool { return len(h.slides) > 0 }

func (h *Slider) buildDots() {
	h.dots = nil
	if h.host == nil {
		return
	}
	h.host.Clear()
	for i := range h.slides {
		dot := h.host.AddDot(fmt.Sprintf("Ir para slide %d", i+1), func() { h.GoTo(i) })
		h.dots = append(h.dots, dot)
	}
}

// Len returns the number of slides.
func (h *Slider) Len() int { return len(h.slides) }

// Current returns the active slide index.
func (h *Slider) Current() int { return h.current }

// Playing reports whether the autoplay timer is installed.
func (h *Slider) Playing() bool { return h.timer != nil }

// GoTo activates slide i, wrapping in both directions, and restarts the
// progress fill.
func (h *Slider) GoTo(i int) {
	if !h.enabled() {
		return
	}
	n := len(h.slides)
	h.current = ((i % n) + n) % n
	h.update()
}

// Next activates the following slide.
func (h *Slider) Next() { h.GoTo(h.current + 1) }

// Prev activates the preceding slide.
func (h *Slider) Prev() { h.GoTo(h.current - 1) }

// Start (re)installs the repeating autoplay timer and restarts the progress
// fill.
func (h *Slider) Start() {
	if !h.enabled() {
		return
	}
	h.Stop()
	h.timer = sched.Every(h.s, h.opts.Interval, h.Next)
	h.resetProgress()
}

// Stop cancels autoplay and freezes the progress fill where it is.
func (h *Slider) Stop() {
	if !h.enabled() {
		return
	}
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.gen++
	if h.fill != nil {
		h.fill.SetTransition(0)
	}
}

func (h *Slider) update() {
	h.markActive()
	h.resetProgress()
}

func (h *Slider) markActive() {
	for i, s := range h.slides {
		if s != nil {
			s.SetActive(i == h.current)
		}
	}
	for i, d := range h.dots {
		if d != nil {
			d.SetActive(i == h.current)
		}
	}
}

// resetProgress commits an empty fill, lets it paint, then animates to full
// over the interval. The animate step waits two frames so the empty state is
// painted before the transition begins.
func (h *Slider) resetProgress() {
	if h.fill == nil {
		return
	}
	h.gen++
	gen := h.gen
	h.fill.SetTransition(0)
	h.fill.SetWidth(0)
	h.s.NextFrame(func() {
		h.s.NextFrame(func() {
			if gen != h.gen {
				return
			}
			h.fill.SetTransition(h.opts.Interval)
			h.fill.SetWidth(100)
		})
	})
}

// Advance implements strip.Strip.
func (h *Slider) Advance() { h.Next() }

// Retreat implements strip.Strip.
func (h *Slider) Retreat() { h.Prev() }

// Pause implements strip.Strip.
func (h *Slider) Pause() { h.Stop() }

// Resume implements strip.Strip.
func (h *Slider) Resume() { h.Start() }

// RecomputeBounds implements strip.Strip. Slides are fixed, so it only
// re-asserts the active marks.
func (h *Slider) RecomputeBounds() {
	if h.enabled() {
		h.markActive()
	}
}
