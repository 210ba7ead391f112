package hero

import (
	"testing"
	"time"

	"github.com/germanamz/cinifilme/pkg/sched"
	"github.com/germanamz/cinifilme/pkg/strip"
	"github.com/germanamz/cinifilme/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	clock *sched.Manual
	doc   *surface.StaticDocument
	hero  *fakeHero
	s     *Slider
}

func newFixture(n int, opts Options) *fixture {
	clock := sched.NewManual()
	doc := &surface.StaticDocument{}
	h := newHero(n)
	s := New(clock, doc, h, opts, zap.NewNop())
	s.Init()
	return &fixture{clock: clock, doc: doc, hero: h, s: s}
}

func TestInit(t *testing.T) {
	f := newFixture(3, Options{})

	require.Len(t, f.hero.dots.dots, 3)
	assert.Equal(t, 1, f.hero.dots.cleared)
	assert.Equal(t, "Ir para slide 1", f.hero.dots.dots[0].label)
	assert.Equal(t, "Ir para slide 3", f.hero.dots.dots[2].label)
	assert.Equal(t, []int{0}, f.hero.active())
	assert.Equal(t, []int{0}, f.hero.activeDots())
	assert.True(t, f.s.Playing())
	assert.Equal(t, 3, f.s.Len())
}

func TestPrevNextWrap(t *testing.T) {
	f := newFixture(3, Options{})

	f.s.Prev()
	assert.Equal(t, 2, f.s.Current())
	assert.Equal(t, []int{2}, f.hero.active())

	f.s.Next()
	assert.Equal(t, 0, f.s.Current())
	assert.Equal(t, []int{0}, f.hero.activeDots())
}

func TestGoTo(t *testing.T) {
	tests := []struct {
		target int
		want   int
	}{
		{target: 0, want: 0},
		{target: 2, want: 2},
		{target: 3, want: 0},
		{target: -1, want: 2},
		{target: -4, want: 2},
		{target: 7, want: 1},
	}

	for _, tt := range tests {
		f := newFixture(3, Options{})
		f.s.GoTo(tt.target)
		assert.Equal(t, tt.want, f.s.Current(), "goTo(%d)", tt.target)
		assert.Equal(t, []int{tt.want}, f.hero.active(), "goTo(%d)", tt.target)
	}
}

func TestGoTo_Idempotent(t *testing.T) {
	f := newFixture(4, Options{})

	f.s.GoTo(2)
	f.s.GoTo(2)
	assert.Equal(t, 2, f.s.Current())
	assert.Equal(t, []int{2}, f.hero.active())
	assert.Equal(t, []int{2}, f.hero.activeDots())
}

func TestDotClick(t *testing.T) {
	f := newFixture(3, Options{})

	f.hero.dots.dots[1].onClick()
	assert.Equal(t, 1, f.s.Current())
	assert.Equal(t, []int{1}, f.hero.activeDots())
}

func TestAutoplay(t *testing.T) {
	f := newFixture(3, Options{})

	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 1, f.s.Current())
	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 2, f.s.Current())
	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 0, f.s.Current())
	assert.Equal(t, 1, f.clock.Pending(), "one repeating timer")
}

func TestAutoplay_HoverPausesAndRestartsFresh(t *testing.T) {
	f := newFixture(3, Options{})

	f.clock.Advance(3 * time.Second)
	f.s.PointerEnter()
	assert.False(t, f.s.Playing())

	f.clock.Advance(20 * time.Second)
	assert.Equal(t, 0, f.s.Current(), "no tick while hovered")

	f.s.PointerLeave()
	f.clock.Advance(4999 * time.Millisecond)
	assert.Equal(t, 0, f.s.Current())
	f.clock.Advance(time.Millisecond)
	assert.Equal(t, 1, f.s.Current())
}

func TestAutoplay_Visibility(t *testing.T) {
	f := newFixture(3, Options{Interval: time.Second})

	f.doc.IsHidden = true
	f.s.VisibilityChanged()
	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 0, f.s.Current())

	f.doc.IsHidden = false
	f.s.VisibilityChanged()
	f.clock.Advance(time.Second)
	assert.Equal(t, 1, f.s.Current())
}

func TestStart_NeverLeaksTimers(t *testing.T) {
	f := newFixture(3, Options{})

	f.s.Start()
	f.s.Start()
	f.s.Resume()
	assert.Equal(t, 1, f.clock.Pending())

	f.clock.Advance(5 * time.Second)
	assert.Equal(t, 1, f.s.Current())
}

func TestProgress_ResetsThenAnimatesAfterTwoFrames(t *testing.T) {
	f := newFixture(3, Options{})
	fill := f.hero.fill

	assert.Zero(t, fill.width)
	assert.Zero(t, fill.transition)

	assert.Positive(t, f.clock.Frame())
	assert.Zero(t, fill.width, "reset must be painted before animating")

	f.clock.Frame()
	assert.InDelta(t, 100, fill.width, 1e-9)
	assert.Equal(t, 5*time.Second, fill.transition)

	f.s.Next()
	assert.Zero(t, fill.width)
	assert.Equal(t, fillCommit{transition: 0, width: 0}, fill.log[len(fill.log)-1])
	f.clock.Frame()
	f.clock.Frame()
	assert.InDelta(t, 100, fill.width, 1e-9)
}

func TestProgress_StaleCommitsAreDropped(t *testing.T) {
	f := newFixture(3, Options{})
	fill := f.hero.fill

	f.clock.Frame()
	f.s.Next()
	commits := len(fill.log)

	// Second frames of the resets made during Init run here and must not commit.
	f.clock.Frame()
	assert.Len(t, fill.log, commits)
	assert.Zero(t, fill.width)

	f.clock.Frame()
	assert.Len(t, fill.log, commits+1)
	assert.InDelta(t, 100, fill.width, 1e-9)
}

func TestStop_FreezesFill(t *testing.T) {
	f := newFixture(3, Options{})
	fill := f.hero.fill
	f.clock.Frame()
	f.clock.Frame()
	commits := len(fill.log)

	f.s.Stop()
	assert.Zero(t, fill.transition)
	assert.Len(t, fill.log, commits, "stop does not snap the width back")

	f.s.GoTo(1)
	f.s.Stop()
	f.clock.Frame()
	f.clock.Frame()
	assert.Zero(t, fill.width, "a stop cancels the pending animate step")
}

func TestKeyDown(t *testing.T) {
	f := newFixture(3, Options{})

	assert.True(t, f.s.KeyDown(surface.KeyArrowLeft))
	assert.Equal(t, 2, f.s.Current())
	assert.True(t, f.s.KeyDown(surface.KeyArrowRight))
	assert.Equal(t, 0, f.s.Current())
	assert.False(t, f.s.KeyDown(surface.KeyEnter))
	assert.Equal(t, 0, f.s.Current())
}

func TestTouch(t *testing.T) {
	f := newFixture(3, Options{})

	f.s.TouchStart(300, 50)
	assert.True(t, f.s.TouchMove(260, 45))
	assert.Equal(t, strip.Forward, f.s.TouchEnd(240))
	assert.Equal(t, 1, f.s.Current())

	f.s.TouchStart(300, 50)
	assert.Equal(t, strip.Direction(0), f.s.TouchEnd(270))
	assert.Equal(t, 1, f.s.Current())

	f.s.TouchStart(240, 50)
	assert.Equal(t, strip.Backward, f.s.TouchEnd(300))
	assert.Equal(t, 0, f.s.Current())

	f.s.TouchStart(240, 50)
	f.s.TouchCancel()
	assert.Equal(t, strip.Direction(0), f.s.TouchEnd(400))
}

func TestStripInterface(t *testing.T) {
	f := newFixture(3, Options{})
	var s strip.Strip = f.s

	strip.Step(s, strip.Forward)
	assert.Equal(t, 1, f.s.Current())
	s.Retreat()
	assert.Equal(t, 0, f.s.Current())
	s.Pause()
	assert.False(t, f.s.Playing())
	s.Resume()
	assert.True(t, f.s.Playing())

	f.hero.slides[0].active = false
	s.RecomputeBounds()
	assert.Equal(t, []int{0}, f.hero.active())
}

func TestZeroSlidesDisablesSlider(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	clock := sched.NewManual()
	h := newHero(0)
	s := New(clock, nil, h, Options{}, zap.New(core))
	s.Init()

	assert.Equal(t, 1, logs.Len())
	assert.False(t, s.Playing())
	assert.Zero(t, clock.Pending())
	assert.Zero(t, clock.PendingFrames())

	s.Next()
	s.Prev()
	s.GoTo(4)
	s.Start()
	s.Stop()
	s.RecomputeBounds()
	s.TouchStart(0, 0)
	s.TouchEnd(200)
	assert.Zero(t, s.Current())
	assert.False(t, s.Playing())
	assert.Empty(t, h.dots.dots)
	assert.Empty(t, h.fill.log)
}

func TestMissingOptionalElements(t *testing.T) {
	clock := sched.NewManual()
	h := newHero(2)
	h.dots = nil
	h.fill = nil
	s := New(clock, nil, h, Options{}, nil)
	s.Init()

	s.Next()
	assert.Equal(t, 1, s.Current())
	assert.Equal(t, []int{1}, h.active())
	assert.Zero(t, clock.PendingFrames())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 0, s.Current())
}

func TestNilContainer(t *testing.T) {
	s := New(sched.NewManual(), nil, nil, Options{}, nil)
	s.Init()
	s.Next()
	assert.Zero(t, s.Len())
}

func TestRandomOps_KeepOneActiveSlide(t *testing.T) {
	f := newFixture(5, Options{})
	ops := []func(){
		f.s.Next, f.s.Prev, f.s.Start, f.s.Stop,
		func() { f.s.GoTo(-13) },
		func() { f.s.GoTo(42) },
		func() { f.clock.Advance(2500 * time.Millisecond) },
		func() { f.clock.Frame() },
	}
	for i := range 400 {
		ops[(i*7+i/3)%len(ops)]()
		cur := f.s.Current()
		require.GreaterOrEqual(t, cur, 0)
		require.Less(t, cur, 5)
		require.Equal(t, []int{cur}, f.hero.active(), "step %d", i)
		require.LessOrEqual(t, f.clock.Pending(), 1, "step %d", i)
	}
}
