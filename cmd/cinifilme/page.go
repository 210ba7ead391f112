package main

import (
	"time"

	"github.com/germanamz/cinifilme/pkg/carousel"
	"github.com/germanamz/cinifilme/pkg/catalog"
	"github.com/germanamz/cinifilme/pkg/hero"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// Terminal geometry. One cell is pxPerCol by pxPerRow pixels so gesture
// thresholds and item widths keep their pixel meaning.
const (
	pxPerCol    = 10
	pxPerRow    = 20
	cardCols    = 24
	cardGapCols = 1
	cardLines   = 4
	navCols     = 3

	offsetTween = 300 * time.Millisecond
)

// tween is a linear transition between two values.
type tween struct {
	from, to float64
	start    time.Time
	dur      time.Duration
}

func (t tween) at(now time.Time) float64 {
	if t.dur <= 0 {
		return t.to
	}
	p := float64(now.Sub(t.start)) / float64(t.dur)
	switch {
	case p >= 1:
		return t.to
	case p <= 0:
		return t.from
	}
	return t.from + (t.to-t.from)*p
}

// cardView is one carousel card.
type cardView struct {
	media   catalog.Media
	pressed bool
}

func (c *cardView) Box() carousel.Box {
	return carousel.Box{Width: cardCols * pxPerCol, MarginRight: cardGapCols * pxPerCol}
}

func (c *cardView) Title() string           { return c.media.Title }
func (c *cardView) SetPressed(pressed bool) { c.pressed = pressed }

// trackView is the scrolling strip of a row.
type trackView struct {
	cards  []*cardView
	items  []carousel.Item
	cols   int
	offset tween
	now    func() time.Time
}

func newTrackView(items []catalog.Media, cols int, now func() time.Time) *trackView {
	t := &trackView{cols: cols, now: now}
	for _, m := range items {
		c := &cardView{media: m}
		t.cards = append(t.cards, c)
		t.items = append(t.items, c)
	}
	return t
}

func (t *trackView) Items() []carousel.Item { return t.items }

func (t *trackView) VisibleWidth() float64 { return float64(t.cols * pxPerCol) }

func (t *trackView) SetOffset(px float64, animated bool) {
	now := t.now()
	next := tween{from: t.offset.at(now), to: px, start: now}
	if animated {
		next.dur = offsetTween
	}
	t.offset = next
}

// displayed is the offset currently on screen.
func (t *trackView) displayed() float64 { return t.offset.at(t.now()) }

// controlView is a nav button.
type controlView struct {
	disabled bool
}

func (c *controlView) SetDisabled(disabled bool) { c.disabled = disabled }

// progressView is a row's progress bar.
type progressView struct {
	fraction float64
}

func (p *progressView) SetFraction(f float64) { p.fraction = f }

// rowView is one carousel section as rendered on the page.
type rowView struct {
	id       string
	title    string
	track    *trackView
	prev     *controlView
	next     *controlView
	progress *progressView
	hovered  bool
	focused  bool
}

var _ carousel.Container = (*rowView)(nil)

func (r *rowView) ID() string { return r.id }

func (r *rowView) Content() (carousel.Content, bool) {
	if r.track == nil {
		return nil, false
	}
	return r.track, true
}

func (r *rowView) Prev() surface.Control      { return r.prev }
func (r *rowView) Next() surface.Control      { return r.next }
func (r *rowView) Progress() surface.Progress { return r.progress }
func (r *rowView) Hovered() bool              { return r.hovered }
func (r *rowView) FocusWithin() bool          { return r.focused }

// slideView is one hero slide.
type slideView struct {
	media  catalog.Media
	active bool
}

func (s *slideView) SetActive(active bool) { s.active = active }

// dotView is one hero dot.
type dotView struct {
	label   string
	onClick func()
	active  bool
}

func (d *dotView) SetActive(active bool) { d.active = active }

func (d *dotView) click() {
	if d.onClick != nil {
		d.onClick()
	}
}

// dotHost holds the dots the slider builds.
type dotHost struct {
	dots []*dotView
}

func (h *dotHost) Clear() { h.dots = nil }

func (h *dotHost) AddDot(label string, onClick func()) surface.Toggle {
	d := &dotView{label: label, onClick: onClick}
	h.dots = append(h.dots, d)
	return d
}

// fillView is the hero progress fill. Width is a percentage that moves
// linearly over the current transition duration.
type fillView struct {
	width      tween
	transition time.Duration
	now        func() time.Time
}

// SetTransition pins the fill where it is and sets the duration of the next
// width change.
func (f *fillView) SetTransition(d time.Duration) {
	now := f.now()
	cur := f.width.at(now)
	f.width = tween{from: cur, to: cur, start: now}
	f.transition = d
}

func (f *fillView) SetWidth(percent float64) {
	now := f.now()
	f.width = tween{from: f.width.at(now), to: percent, start: now, dur: f.transition}
}

// fraction is the displayed fill in [0, 1].
func (f *fillView) fraction() float64 {
	return clamp01(f.width.at(f.now()) / 100)
}

// heroView is the hero block.
type heroView struct {
	slides  []*slideView
	dots    *dotHost
	fill    *fillView
	hovered bool
	focused bool
}

var _ hero.Container = (*heroView)(nil)

func (h *heroView) Slides() []surface.Toggle {
	out := make([]surface.Toggle, 0, len(h.slides))
	for _, s := range h.slides {
		out = append(out, s)
	}
	return out
}

func (h *heroView) Dots() hero.DotHost { return h.dots }
func (h *heroView) Fill() hero.Fill    { return h.fill }

// active returns the active slide, or nil.
func (h *heroView) active() *slideView {
	for _, s := range h.slides {
		if s.active {
			return s
		}
	}
	return nil
}

// page holds every surface the engines render through.
type page struct {
	hero  *heroView
	rows  []*rowView
	width int
	now   func() time.Time
}

func newPage(cat catalog.Catalog, width int, now func() time.Time) *page {
	p := &page{width: width, now: now}

	p.hero = &heroView{dots: &dotHost{}, fill: &fillView{now: now}}
	for _, m := range cat.Hero {
		p.hero.slides = append(p.hero.slides, &slideView{media: m})
	}

	for _, s := range cat.Sections {
		p.rows = append(p.rows, &rowView{
			id:       s.ID,
			title:    s.Title,
			track:    newTrackView(s.Items, trackCols(width), now),
			prev:     &controlView{},
			next:     &controlView{},
			progress: &progressView{},
		})
	}
	return p
}

// resize updates the visible track width of every row.
func (p *page) resize(width int) {
	p.width = width
	for _, r := range p.rows {
		r.track.cols = trackCols(width)
	}
}

func (p *page) containers() []carousel.Container {
	out := make([]carousel.Container, 0, len(p.rows))
	for _, r := range p.rows {
		out = append(out, r)
	}
	return out
}

func trackCols(width int) int {
	return max(width-2*navCols, 1)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
