package carousel

import "go.uber.org/zap"

// StartAutoplay (re)starts the autoplay timer of carousel id with a full
// interval. A pending tick is always cancelled first.
func (m *Manager) StartAutoplay(id string) {
	if in, ok := m.instances[id]; ok {
		m.startAutoplay(in)
	}
}

// StopAutoplay cancels the autoplay timer of carousel id.
func (m *Manager) StopAutoplay(id string) {
	if in, ok := m.instances[id]; ok {
		m.stopAutoplay(in)
	}
}

// StartAll restarts autoplay on every instance.
func (m *Manager) StartAll() {
	for _, id := range m.order {
		m.startAutoplay(m.instances[id])
	}
}

func (m *Manager) startAutoplay(in *instance) {
	m.stopAutoplay(in)
	m.schedule(in)
}

func (m *Manager) stopAutoplay(in *instance) {
	if in.autoplay != nil {
		in.autoplay.Stop()
		in.autoplay = nil
	}
}

func (m *Manager) schedule(in *instance) {
	id := in.id
	in.autoplay = m.s.AfterFunc(m.opts.AutoplayInterval, func() { m.tick(id) })
}

// tick is one autoplay step. The instance is looked up again because it may
// have been torn down since the tick was scheduled.
func (m *Manager) tick(id string) {
	in, ok := m.instances[id]
	if !ok {
		return
	}
	in.autoplay = nil

	if m.interrupted(in) {
		m.log.Debug("autoplay tick suppressed", zap.String("id", id))
		m.schedule(in)
		return
	}

	if in.offset >= in.maxOffset {
		m.apply(in, 0, false)
	} else {
		m.Navigate(id, 1)
	}
	m.schedule(in)
}

func (m *Manager) interrupted(in *instance) bool {
	return in.container.Hovered() || in.container.FocusWithin() || m.doc.Hidden()
}
