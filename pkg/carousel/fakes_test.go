package carousel

import "github.com/germanamz/cinifilme/pkg/surface"

type fakeItem struct {
	box     Box
	title   string
	pressed bool
	presses int
}

func (i *fakeItem) Box() Box      { return i.box }
func (i *fakeItem) Title() string { return i.title }

func (i *fakeItem) SetPressed(pressed bool) {
	if pressed {
		i.presses++
	}
	i.pressed = pressed
}

type fakeControl struct {
	disabled bool
}

func (c *fakeControl) SetDisabled(disabled bool) { c.disabled = disabled }

type fakeProgress struct {
	fraction float64
	updates  int
}

func (p *fakeProgress) SetFraction(f float64) {
	p.fraction = f
	p.updates++
}

type fakeContent struct {
	items      []Item
	width      float64
	offset     float64
	animated   bool
	applied    int
	itemsCalls int
}

func (c *fakeContent) Items() []Item {
	c.itemsCalls++
	return c.items
}

func (c *fakeContent) VisibleWidth() float64 { return c.width }

func (c *fakeContent) SetOffset(px float64, animated bool) {
	c.offset = px
	c.animated = animated
	c.applied++
}

type fakeContainer struct {
	id        string
	content   *fakeContent
	prev      *fakeControl
	next      *fakeControl
	progress  *fakeProgress
	hovered   bool
	focused   bool
	noContent bool
}

func (c *fakeContainer) ID() string { return c.id }

func (c *fakeContainer) Content() (Content, bool) {
	if c.noContent || c.content == nil {
		return nil, false
	}
	return c.content, true
}

func (c *fakeContainer) Prev() surface.Control {
	if c.prev == nil {
		return nil
	}
	return c.prev
}

func (c *fakeContainer) Next() surface.Control {
	if c.next == nil {
		return nil
	}
	return c.next
}

func (c *fakeContainer) Progress() surface.Progress {
	if c.progress == nil {
		return nil
	}
	return c.progress
}

func (c *fakeContainer) Hovered() bool     { return c.hovered }
func (c *fakeContainer) FocusWithin() bool { return c.focused }

// newContainer builds a fully wired container with n items whose effective
// width (box + margin + 15 extra) is 300px inside a 900px viewport.
func newContainer(id string, n int) *fakeContainer {
	items := make([]Item, n)
	for i := range items {
		items[i] = &fakeItem{box: Box{Width: 270, MarginRight: 15}, title: id + "-" + string(rune('A'+i))}
	}
	return &fakeContainer{
		id:       id,
		content:  &fakeContent{items: items, width: 900},
		prev:     &fakeControl{},
		next:     &fakeControl{},
		progress: &fakeProgress{},
	}
}
