package carousel

import (
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// PointerEnter reports that the pointer entered carousel id.
func (m *Manager) PointerEnter(id string) {
	if m.opts.PauseMode == PauseSuspend {
		m.StopAutoplay(id)
	}
}

// PointerLeave reports that the pointer left carousel id. Autoplay restarts
// with a full interval.
func (m *Manager) PointerLeave(id string) {
	m.StartAutoplay(id)
}

// FocusIn reports that keyboard focus moved inside carousel id.
func (m *Manager) FocusIn(id string) {
	if m.opts.PauseMode == PauseSuspend {
		m.StopAutoplay(id)
	}
}

// FocusOut reports that keyboard focus left carousel id. Autoplay restarts
// with a full interval.
func (m *Manager) FocusOut(id string) {
	m.StartAutoplay(id)
}

// VisibilityChanged reports a document visibility change. Becoming visible
// restarts every instance's timer.
func (m *Manager) VisibilityChanged() {
	if !m.doc.Hidden() {
		m.StartAll()
		return
	}
	if m.opts.PauseMode == PauseSuspend {
		for _, id := range m.order {
			m.stopAutoplay(m.instances[id])
		}
	}
}

// KeyDown handles key pressed on the item at index of carousel id. It reports
// whether the key was consumed, in which case the host suppresses its default
// action.
func (m *Manager) KeyDown(id string, index int, key surface.Key) bool {
	switch key {
	case surface.KeyArrowLeft:
		m.Navigate(id, strip.Backward)
	case surface.KeyArrowRight:
		m.Navigate(id, strip.Forward)
	case surface.KeyEnter, surface.KeySpace:
		m.SelectItem(m.Item(id, index))
	default:
		return false
	}
	return true
}

// TouchStart begins a drag gesture on carousel id.
func (m *Manager) TouchStart(id string, x, y float64) {
	if in, ok := m.instances[id]; ok {
		in.drag.Start(x, y)
	}
}

// TouchMove updates the drag gesture. It reports whether the gesture is
// horizontal, in which case the host suppresses default scrolling.
func (m *Manager) TouchMove(id string, x, y float64) bool {
	in, ok := m.instances[id]
	if !ok {
		return false
	}
	return in.drag.Move(x, y)
}

// TouchEnd finishes the drag gesture and navigates once when the horizontal
// displacement exceeds the swipe threshold. It returns the direction taken.
func (m *Manager) TouchEnd(id string, x float64) strip.Direction {
	in, ok := m.instances[id]
	if !ok {
		return 0
	}
	dir := in.drag.End(x)
	if dir != 0 {
		m.Navigate(id, dir)
	}
	return dir
}

// TouchCancel abandons the drag gesture on carousel id.
func (m *Manager) TouchCancel(id string) {
	if in, ok := m.instances[id]; ok {
		in.drag.Cancel()
	}
}
