package hero

import (
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// PointerEnter pauses autoplay while the pointer is over the hero.
func (h *Slider) PointerEnter() { h.Stop() }

// PointerLeave restarts autoplay with a full interval.
func (h *Slider) PointerLeave() { h.Start() }

// VisibilityChanged stops autoplay while the document is hidden and restarts
// it when the document becomes visible again.
func (h *Slider) VisibilityChanged() {
	if h.doc.Hidden() {
		h.Stop()
		return
	}
	h.Start()
}

// KeyDown handles a key pressed inside the hero and reports whether it was
// consumed.
func (h *Slider) KeyDown(key surface.Key) bool {
	switch key {
	case surface.KeyArrowLeft:
		h.Prev()
	case surface.KeyArrowRight:
		h.Next()
	default:
		return false
	}
	return true
}

// TouchStart begins a drag gesture.
func (h *Slider) TouchStart(x, y float64) { h.drag.Start(x, y) }

// TouchMove reports whether the drag is horizontal and claims it.
func (h *Slider) TouchMove(x, y float64) bool { return h.drag.Move(x, y) }

// TouchEnd finishes the drag and changes slide once when the swipe is past the
// threshold.
func (h *Slider) TouchEnd(x float64) strip.Direction {
	dir := h.drag.End(x)
	strip.Step(h, dir)
	return dir
}

// TouchCancel abandons the drag.
func (h *Slider) TouchCancel() { h.drag.Cancel() }
