package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/germanamz/cinifilme/pkg/announce"
	"github.com/germanamz/cinifilme/pkg/carousel"
	"github.com/germanamz/cinifilme/pkg/catalog"
	"github.com/germanamz/cinifilme/pkg/hero"
	"github.com/germanamz/cinifilme/pkg/promo"
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
)

// renderInterval is the repaint cadence for time-based rendering.
const renderInterval = 100 * time.Millisecond

// modelOptions configures the engines behind the page.
type modelOptions struct {
	Carousel        carousel.Options
	Hero            hero.Options
	AnnounceTimeout time.Duration
}

// dragState tracks a left-button drag that started on row.
type dragState struct {
	row  int
	from hit
	x, y int
}

// appModel is the Bubble Tea model for the page.
type appModel struct {
	cat  catalog.Catalog
	opts modelOptions
	log  *zap.Logger
	now  func() time.Time

	loop   *loop
	doc    *surface.StaticDocument
	region *announce.Region

	// Built on the first WindowSizeMsg, when geometry is known.
	page   *page
	mgr    *carousel.Manager
	slider *hero.Slider

	keys     keyMap
	help     help.Model
	rowBar   progress.Model
	heroBar  progress.Model
	overview map[int]string

	width, height int
	focus         int // -1 none, 0 hero, k carousel row k-1.
	hover         int
	drag          *dragState
	scrollY       int
	frame         int
	promoLoop     string
}

func newAppModel(cat catalog.Catalog, opts modelOptions, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	return appModel{
		cat:       cat,
		opts:      opts,
		log:       log,
		now:       time.Now,
		loop:      newLoop(),
		doc:       &surface.StaticDocument{},
		region:    &announce.Region{},
		keys:      newKeyMap(),
		help:      help.New(),
		rowBar:    progress.New(progress.WithSolidFill(carouselFillColor), progress.WithoutPercentage()),
		heroBar:   progress.New(progress.WithGradient(heroGradientFrom, heroGradientTo), progress.WithoutPercentage()),
		overview:  make(map[int]string),
		focus:     -1,
		hover:     -1,
		promoLoop: promoLoop(cat),
	}
}

// promoLoop joins one copy of the promo strip into a marquee loop.
func promoLoop(cat catalog.Catalog) string {
	s := promo.Strip(cat, promo.DefaultMax)
	s = s[:len(s)/2]
	if len(s) == 0 {
		return ""
	}
	names := make([]string, 0, len(s))
	for _, src := range s {
		names = append(names, imageName(src))
	}
	return strings.Join(names, " · ") + " · "
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.shutdown()
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.FocusMsg:
		m.setHidden(false)
	case tea.BlurMsg:
		// Terminals send no pointer leave, so focus loss ends any hover.
		m.setHover(-1)
		m.setHidden(true)
	case timerMsg:
		m.loop.fire(msg.id)
	case frameMsg:
		m.loop.frame()
	case tickMsg:
		m.frame++
		cmd = tickCmd()
	}

	return m, tea.Batch(cmd, m.loop.flush())
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.rowBar.Width = trackCols(msg.Width)
	m.heroBar.Width = trackCols(msg.Width)
	m.overview = make(map[int]string)
	initMarkdownRenderer(trackCols(msg.Width))

	if m.page == nil {
		m.build()
		return
	}
	m.page.resize(msg.Width)
	m.mgr.Resized()
	m.slider.RecomputeBounds()
	m.clampScroll()
}

// build creates the page and starts both engines.
func (m *appModel) build() {
	m.page = newPage(m.cat, m.width, m.now)
	ann := announce.New(m.region, m.loop.q, m.opts.AnnounceTimeout)

	m.mgr = carousel.New(m.loop.q, m.doc, ann, m.opts.Carousel, m.log)
	m.mgr.Init(m.page.containers())

	m.slider = hero.New(m.loop.q, m.doc, m.page.hero, m.opts.Hero, m.log)
	m.slider.Init()

	m.log.Debug("page built",
		zap.Int("width", m.width),
		zap.Int("rows", len(m.page.rows)),
		zap.Int("slides", m.slider.Len()))
}

func (m *appModel) shutdown() {
	if m.mgr != nil {
		m.mgr.Close()
	}
	if m.slider != nil {
		m.slider.Stop()
	}
}

func (m *appModel) handleKey(msg tea.KeyMsg) {
	if m.page == nil {
		return
	}

	switch {
	case key.Matches(msg, m.keys.NextRow):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevRow):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Blur):
		m.setFocus(-1)
	case key.Matches(msg, m.keys.Left):
		m.sendKey(surface.KeyArrowLeft)
	case key.Matches(msg, m.keys.Right):
		m.sendKey(surface.KeyArrowRight)
	case key.Matches(msg, m.keys.Select):
		if msg.String() == " " {
			m.sendKey(surface.KeySpace)
		} else {
			m.sendKey(surface.KeyEnter)
		}
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.bodyHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.bodyHeight())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampScroll()
	}
}

// sendKey delivers a navigation key to the focused row.
func (m *appModel) sendKey(k surface.Key) {
	switch {
	case m.focus == 0:
		m.slider.KeyDown(k)
	case m.focus > 0:
		r := m.page.rows[m.focus-1]
		st, _ := m.mgr.State(r.id)
		m.mgr.KeyDown(r.id, st.PageIndex, k)
	}
}

func (m *appModel) rowCount() int { return 1 + len(m.page.rows) }

func (m *appModel) moveFocus(delta int) {
	n := m.rowCount()
	next := m.focus + delta
	switch {
	case m.focus < 0 && delta < 0:
		next = n - 1
	case next < 0:
		next = n - 1
	case next >= n:
		next = 0
	}
	m.setFocus(next)
}

// setFocus moves keyboard focus to row, firing focus-out on the old row
// before focus-in on the new one.
func (m *appModel) setFocus(row int) {
	if row == m.focus {
		return
	}
	if old := m.focus; old >= 0 {
		if old == 0 {
			m.page.hero.focused = false
		} else {
			r := m.page.rows[old-1]
			r.focused = false
			m.mgr.FocusOut(r.id)
		}
	}
	m.focus = row
	if row < 0 {
		return
	}
	if row == 0 {
		m.page.hero.focused = true
	} else {
		r := m.page.rows[row-1]
		r.focused = true
		m.mgr.FocusIn(r.id)
	}
	m.ensureVisible(row)
}

// setHover moves the pointer to row, firing leave before enter.
func (m *appModel) setHover(row int) {
	if row == m.hover {
		return
	}
	if old := m.hover; old >= 0 {
		if old == 0 {
			m.page.hero.hovered = false
			m.slider.PointerLeave()
		} else {
			r := m.page.rows[old-1]
			r.hovered = false
			m.mgr.PointerLeave(r.id)
		}
	}
	m.hover = row
	if row < 0 {
		return
	}
	if row == 0 {
		m.page.hero.hovered = true
		m.slider.PointerEnter()
	} else {
		r := m.page.rows[row-1]
		r.hovered = true
		m.mgr.PointerEnter(r.id)
	}
}

func (m *appModel) setHidden(hidden bool) {
	if m.doc.IsHidden == hidden {
		return
	}
	m.doc.IsHidden = hidden
	if m.page == nil {
		return
	}
	m.mgr.VisibilityChanged()
	m.slider.VisibilityChanged()
}

func (m *appModel) handleMouse(msg tea.MouseMsg) {
	if m.page == nil {
		return
	}
	h := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.drag != nil {
			m.dragMove(msg.X, msg.Y)
			return
		}
		m.setHover(h.row)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-3)
		case tea.MouseButtonWheelDown:
			m.scroll(3)
		case tea.MouseButtonLeft:
			m.setHover(h.row)
			m.dragStart(h, msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.dragEnd(msg.X)
		m.setHover(h.row)
	}
}

func (m *appModel) hitTest(x, y int) hit {
	by := y - headerLines
	if by < 0 || by >= m.bodyHeight() {
		return noHit
	}
	return m.page.hitTest(x, by+m.scrollY, func(id string) float64 {
		st, _ := m.mgr.State(id)
		return st.ItemWidth
	})
}

func (m *appModel) dragStart(h hit, x, y int) {
	if h.row < 0 {
		m.drag = nil
		return
	}
	m.drag = &dragState{row: h.row, from: h, x: x, y: y}
	px, py := float64(x*pxPerCol), float64(y*pxPerRow)
	if h.row == 0 {
		m.slider.TouchStart(px, py)
	} else {
		m.mgr.TouchStart(m.page.rows[h.row-1].id, px, py)
	}
}

func (m *appModel) dragMove(x, y int) {
	px, py := float64(x*pxPerCol), float64(y*pxPerRow)
	if m.drag.row == 0 {
		m.slider.TouchMove(px, py)
	} else {
		m.mgr.TouchMove(m.page.rows[m.drag.row-1].id, px, py)
	}
}

// dragEnd finishes the gesture. A release that did not swipe is a click on
// whatever the press landed on.
func (m *appModel) dragEnd(x int) {
	d := m.drag
	if d == nil {
		return
	}
	m.drag = nil

	px := float64(x * pxPerCol)
	var dir strip.Direction
	if d.row == 0 {
		dir = m.slider.TouchEnd(px)
	} else {
		dir = m.mgr.TouchEnd(m.page.rows[d.row-1].id, px)
	}
	if dir == 0 {
		m.click(d.from)
	}
}

func (m *appModel) click(h hit) {
	if h.row < 0 || h.part == partNone {
		return
	}
	m.setFocus(h.row)

	if h.row == 0 {
		switch h.part {
		case partPrev:
			m.slider.Prev()
		case partNext:
			m.slider.Next()
		case partDot:
			m.page.hero.dots.dots[h.index].click()
		}
		return
	}

	id := m.page.rows[h.row-1].id
	switch h.part {
	case partPrev:
		if !m.page.rows[h.row-1].prev.disabled {
			m.mgr.Navigate(id, strip.Backward)
		}
	case partNext:
		if !m.page.rows[h.row-1].next.disabled {
			m.mgr.Navigate(id, strip.Forward)
		}
	case partCard:
		m.mgr.SelectItem(m.mgr.Item(id, h.index))
	}
}

func (m *appModel) footerHeight() int {
	return 2 + strings.Count(m.help.View(m.keys), "\n") + 1
}

func (m *appModel) bodyHeight() int {
	return max(m.height-headerLines-m.footerHeight(), 1)
}

func (m *appModel) maxScroll() int {
	if m.page == nil {
		return 0
	}
	return max(bodyLines(len(m.page.rows))-m.bodyHeight(), 0)
}

func (m *appModel) clampScroll() {
	m.scrollY = min(max(m.scrollY, 0), m.maxScroll())
}

func (m *appModel) scroll(delta int) {
	m.scrollY += delta
	m.clampScroll()
}

// ensureVisible scrolls the body so row is on screen.
func (m *appModel) ensureVisible(row int) {
	top := rowTop(row)
	bottom := top + rowHeight(row)
	h := m.bodyHeight()
	switch {
	case top < m.scrollY:
		m.scrollY = top
	case bottom > m.scrollY+h:
		m.scrollY = bottom - h
	}
	m.clampScroll()
}
