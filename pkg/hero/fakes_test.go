package hero

import (
	"time"

	"github.com/germanamz/cinifilme/pkg/surface"
)

type fakeToggle struct {
	active  bool
	changes int
}

func (t *fakeToggle) SetActive(active bool) {
	t.active = active
	t.changes++
}

type fakeDot struct {
	fakeToggle
	label   string
	onClick func()
}

type fakeDotHost struct {
	dots    []*fakeDot
	cleared int
}

func (h *fakeDotHost) Clear() {
	h.dots = nil
	h.cleared++
}

func (h *fakeDotHost) AddDot(label string, onClick func()) surface.Toggle {
	d := &fakeDot{label: label, onClick: onClick}
	h.dots = append(h.dots, d)
	return d
}

type fillCommit struct {
	transition time.Duration
	width      float64
}

type fakeFill struct {
	transition time.Duration
	width      float64
	log        []fillCommit
}

func (f *fakeFill) SetTransition(d time.Duration) { f.transition = d }

func (f *fakeFill) SetWidth(percent float64) {
	f.width = percent
	f.log = append(f.log, fillCommit{transition: f.transition, width: percent})
}

type fakeHero struct {
	slides []*fakeToggle
	dots   *fakeDotHost
	fill   *fakeFill
}

func newHero(n int) *fakeHero {
	slides := make([]*fakeToggle, n)
	for i := range slides {
		slides[i] = &fakeToggle{}
	}
	return &fakeHero{slides: slides, dots: &fakeDotHost{}, fill: &fakeFill{}}
}

func (h *fakeHero) Slides() []surface.Toggle {
	out := make([]surface.Toggle, len(h.slides))
	for i, s := range h.slides {
		out[i] = s
	}
	return out
}

func (h *fakeHero) Dots() DotHost {
	if h.dots == nil {
		return nil
	}
	return h.dots
}

func (h *fakeHero) Fill() Fill {
	if h.fill == nil {
		return nil
	}
	return h.fill
}

func (h *fakeHero) active() []int {
	var out []int
	for i, s := range h.slides {
		if s.active {
			out = append(out, i)
		}
	}
	return out
}

func (h *fakeHero) activeDots() []int {
	var out []int
	for i, d := range h.dots.dots {
		if d.active {
			out = append(out, i)
		}
	}
	return out
}
