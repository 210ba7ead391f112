package carousel

import (
	"math"

	"go.uber.org/zap"

	"github.com/germanamz/cinifilme/pkg/announce"
	"github.com/germanamz/cinifilme/pkg/gesture"
	"github.com/germanamz/cinifilme/pkg/sched"
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// Screen reader announcements.
const (
	msgNavigateNext     = "Navegando para próximos itens"
	msgNavigatePrev     = "Navegando para itens anteriores"
	msgSelectedSuffix   = " selecionado"
	msgUntitledSelected = "Filme selecionado"
)

// instance is the state owned by the Manager for one carousel.
type instance struct {
	id        string
	container Container
	content   Content
	items     []Item
	itemWidth float64
	maxOffset float64
	offset    float64
	pageIndex int
	autoplay  sched.Timer
	drag      gesture.Drag
}

// Manager owns every registered carousel instance.
type Manager struct {
	opts      Options
	s         sched.Scheduler
	doc       surface.Document
	ann       *announce.Announcer
	log       *zap.Logger
	instances map[string]*instance
	order     []string
	resize    *sched.Debouncer
}

// New creates an empty Manager. doc and ann may be nil.
func New(s sched.Scheduler, doc surface.Document, ann *announce.Announcer, opts Options, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if doc == nil {
		doc = &surface.StaticDocument{}
	}
	m := &Manager{
		opts:      opts.withDefaults(),
		s:         s,
		doc:       doc,
		ann:       ann,
		log:       log,
		instances: make(map[string]*instance),
	}
	m.resize = sched.NewDebouncer(s, m.opts.ResizeDebounce, m.Recalculate)
	return m
}

// Init registers every declared container and starts its autoplay. A
// container without a content element, or whose id is already registered, is
// skipped.
func (m *Manager) Init(containers []Container) {
	for _, c := range containers {
		m.register(c)
	}
	m.log.Debug("carousels initialized", zap.Int("count", len(m.instances)))
}

func (m *Manager) register(c Container) {
	if c == nil {
		return
	}
	id := c.ID()
	content, ok := c.Content()
	if !ok || content == nil {
		m.log.Warn("carousel container has no content element, skipping", zap.String("id", id))
		return
	}
	if _, dup := m.instances[id]; dup {
		m.log.Warn("duplicate carousel id, skipping", zap.String("id", id))
		return
	}

	in := &instance{
		id:        id,
		container: c,
		content:   content,
		drag:      gesture.Drag{Threshold: m.opts.SwipeThreshold},
	}
	m.measure(in)
	m.instances[id] = in
	m.order = append(m.order, id)

	m.refresh(in)
	m.startAutoplay(in)
}

// IDs returns the registered carousel ids in registration order.
func (m *Manager) IDs() []string {
	return append([]string(nil), m.order...)
}

// State returns a snapshot of the instance registered under id.
func (m *Manager) State(id string) (State, bool) {
	in, ok := m.instances[id]
	if !ok {
		return State{}, false
	}
	return State{
		ID:          in.id,
		ItemCount:   len(in.items),
		ItemWidth:   in.itemWidth,
		MaxOffset:   in.maxOffset,
		Offset:      in.offset,
		PageIndex:   in.pageIndex,
		Autoplaying: in.autoplay != nil,
	}, true
}

// Navigate moves carousel id one page in dir, clamped to [0, maxOffset], and
// refreshes its progress indicator and controls. Unknown ids are ignored.
func (m *Manager) Navigate(id string, dir strip.Direction) {
	in, ok := m.instances[id]
	if !ok {
		m.log.Debug("navigate: unknown carousel", zap.String("id", id))
		return
	}
	if dir == 0 {
		return
	}
	sign := 1.0
	if dir < 0 {
		sign = -1
	}

	step := float64(m.opts.PageSize) * in.itemWidth
	m.apply(in, clamp(in.offset+sign*step, 0, in.maxOffset), !m.doc.Hidden())

	if sign > 0 {
		m.ann.Say(msgNavigateNext)
	} else {
		m.ann.Say(msgNavigatePrev)
	}
}

// Recalculate re-derives item width and bounds of every instance from the
// current layout and refreshes control states. Offsets are left untouched;
// the next navigation or autoplay tick brings them back into bounds.
func (m *Manager) Recalculate() {
	for _, id := range m.order {
		m.recompute(m.instances[id])
	}
}

// Resized reports a viewport resize. Bursts of resizes collapse into one
// Recalculate after the configured quiet period.
func (m *Manager) Resized() {
	m.resize.Trigger()
}

// SelectItem shows the pressed affordance on item for a short moment and
// announces the selection.
func (m *Manager) SelectItem(item Item) {
	if item == nil {
		return
	}
	item.SetPressed(true)
	m.s.AfterFunc(m.opts.SelectPress, func() { item.SetPressed(false) })

	title := item.Title()
	m.log.Debug("item selected", zap.String("title", title))
	if title == "" {
		m.ann.Say(msgUntitledSelected)
		return
	}
	m.ann.Say(title + msgSelectedSuffix)
}

// Item returns the item at index in carousel id, or nil.
func (m *Manager) Item(id string, index int) Item {
	in, ok := m.instances[id]
	if !ok || index < 0 || index >= len(in.items) {
		return nil
	}
	return in.items[index]
}

// Strip returns carousel id as a strip.Strip.
func (m *Manager) Strip(id string) strip.Strip {
	return handle{m: m, id: id}
}

// Close cancels every timer and forgets all instances.
func (m *Manager) Close() {
	m.resize.Cancel()
	for _, in := range m.instances {
		m.stopAutoplay(in)
	}
	m.instances = make(map[string]*instance)
	m.order = nil
}

func (m *Manager) measure(in *instance) {
	in.items = in.content.Items()
	in.itemWidth = m.itemWidth(in.items)
	total := float64(len(in.items)) * in.itemWidth
	in.maxOffset = max(0, total-in.content.VisibleWidth()+m.opts.PaddingCompensation)
}

func (m *Manager) itemWidth(items []Item) float64 {
	if len(items) == 0 || items[0] == nil {
		return m.opts.FallbackItemWidth
	}
	b := items[0].Box()
	return b.Width + b.MarginRight + m.opts.CardMarginExtra
}

func (m *Manager) recompute(in *instance) {
	if in == nil {
		return
	}
	m.measure(in)
	m.refresh(in)
	m.log.Debug("carousel recalculated",
		zap.String("id", in.id),
		zap.Float64("item_width", in.itemWidth),
		zap.Float64("max_offset", in.maxOffset),
	)
}

// apply commits a new offset and every UI state derived from it.
func (m *Manager) apply(in *instance, offset float64, animated bool) {
	in.offset = offset
	in.content.SetOffset(offset, animated)
	if in.itemWidth > 0 {
		in.pageIndex = int(math.Round(offset / in.itemWidth))
	} else {
		in.pageIndex = 0
	}
	m.refresh(in)
}

func (m *Manager) refresh(in *instance) {
	if p := in.container.Progress(); p != nil {
		p.SetFraction(progress(in.offset, in.maxOffset))
	}
	if c := in.container.Prev(); c != nil {
		c.SetDisabled(in.offset <= 0)
	}
	if c := in.container.Next(); c != nil {
		c.SetDisabled(in.offset >= in.maxOffset)
	}
}

func progress(offset, maxOffset float64) float64 {
	if maxOffset <= 0 {
		return 0
	}
	return clamp(offset/maxOffset, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

type handle struct {
	m  *Manager
	id string
}

func (h handle) Advance() { h.m.Navigate(h.id, strip.Forward) }
func (h handle) Retreat() { h.m.Navigate(h.id, strip.Backward) }
func (h handle) Pause()   { h.m.StopAutoplay(h.id) }
func (h handle) Resume()  { h.m.StartAutoplay(h.id) }

func (h handle) RecomputeBounds() {
	if in, ok := h.m.instances[h.id]; ok {
		h.m.recompute(in)
	}
}
