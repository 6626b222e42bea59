package cursorpos

import (
	"errors"
	"testing"
	"time"
)

// eventLog records the raw events a region receives.
type eventLog struct {
	types   []EventType
	touches [][]Touch
}

func watch(r *Region) *eventLog {
	log := &eventLog{}
	for typ := EventType(0); typ < eventTypeCount; typ++ {
		r.AddEventListener(typ, func(ev Event) error {
			log.types = append(log.types, ev.Type())
			if te, ok := ev.(*TouchEvent); ok {
				log.touches = append(log.touches, te.Touches)
			}
			return nil
		}, ListenerOptions{Passive: true})
	}
	return log
}

func (l *eventLog) equal(want ...EventType) bool {
	if len(l.types) != len(want) {
		return false
	}
	for i := range want {
		if l.types[i] != want[i] {
			return false
		}
	}
	return true
}

func updateN(t *testing.T, src *PointerSource, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := src.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestPointerSource_MouseEnterMoveLeave(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectCursor(1, 1)
	in.InjectCursor(4, 4)
	in.InjectCursor(5, 5)
	updateN(t, src, 3)

	if !log.equal(EventMouseEnter, EventMouseMove, EventMouseLeave) {
		t.Errorf("events = %v", log.types)
	}
	if src.Hovering() {
		t.Error("source should not be hovering after leave")
	}
}

func TestPointerSource_IdleFramesDispatchNothing(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectCursor(2, 2)
	in.InjectIdle()
	updateN(t, src, 5)

	if !log.equal(EventMouseEnter) {
		t.Errorf("events = %v, want only mouseenter", log.types)
	}
}

func TestPointerSource_TouchSequence(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectTouchPress(1, 1, 2)
	in.InjectTouchMove(1, 10, 10)
	in.InjectTouchRelease(1)
	updateN(t, src, 3)

	if !log.equal(EventTouchStart, EventTouchMove, EventTouchEnd) {
		t.Fatalf("events = %v", log.types)
	}
	if got := log.touches[1][0]; got.PageX != 10 || got.PageY != 10 {
		t.Errorf("touchmove outside the region should still be delivered, got %+v", got)
	}
	if len(log.touches[2]) != 0 {
		t.Errorf("touchend should carry no touches, got %v", log.touches[2])
	}
}

func TestPointerSource_TouchOutsideIgnored(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	// Starts outside, then slides in: not a press on the region.
	in.InjectTouchPress(1, 10, 10)
	in.InjectTouchMove(1, 2, 2)
	in.InjectTouchRelease(1)
	updateN(t, src, 3)

	if len(log.types) != 0 {
		t.Errorf("events = %v, want none", log.types)
	}
}

func TestPointerSource_TrackedTouchFirst(t *testing.T) {
	region := NewRegion("box", Rect{X: 100, Y: 100, Width: 50, Height: 50})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectTouchPress(1, 10, 10)   // outside
	in.InjectTouchPress(2, 120, 120) // inside
	updateN(t, src, 2)

	if !log.equal(EventTouchStart) {
		t.Fatalf("events = %v", log.types)
	}
	if first := log.touches[0][0]; first.ID != 2 {
		t.Errorf("first touch = %+v, want the touch on the region", first)
	}
	if len(log.touches[0]) != 2 {
		t.Errorf("expected both active touches, got %v", log.touches[0])
	}
}

// frameReader plays back fixed per-frame snapshots, repeating the last.
type frameReader struct {
	frames []InputSnapshot
}

func (r *frameReader) ReadInput(dst *InputSnapshot) {
	f := r.frames[0]
	if len(r.frames) > 1 {
		r.frames = r.frames[1:]
	}
	*dst = InputSnapshot{CursorX: f.CursorX, CursorY: f.CursorY, Touches: append([]Touch(nil), f.Touches...)}
}

func TestPointerSource_TouchHandoffInOneFrame(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	reader := &frameReader{frames: []InputSnapshot{
		{CursorX: offscreen, CursorY: offscreen, Touches: []Touch{{ID: 1, PageX: 1, PageY: 1}}},
		{CursorX: offscreen, CursorY: offscreen, Touches: []Touch{{ID: 2, PageX: 3, PageY: 3}}},
		{CursorX: offscreen, CursorY: offscreen, Touches: []Touch{{ID: 2, PageX: 3, PageY: 3}}},
		{CursorX: offscreen, CursorY: offscreen},
	}}
	src := NewPointerSource(region, reader)
	updateN(t, src, 4)

	if !log.equal(EventTouchStart, EventTouchEnd, EventTouchStart, EventTouchEnd) {
		t.Fatalf("events = %v", log.types)
	}
	if got := log.touches[2][0]; got.ID != 2 || got.PageX != 3 {
		t.Errorf("second touchstart = %+v, want touch 2", got)
	}
	if src.Touching() {
		t.Error("source should not be touching after the last lift")
	}
}

func TestPointerSource_MouseSkippedWhileTouching(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectTouchPress(1, 1, 1)
	in.InjectCursor(2, 2)
	in.InjectCursor(3, 3)
	updateN(t, src, 3)

	if !log.equal(EventTouchStart) {
		t.Errorf("events = %v, want only touchstart", log.types)
	}
	if !src.Touching() {
		t.Error("source should report touching")
	}
}

func TestPointerSource_UnmountReleases(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	log := watch(region)
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectCursor(1, 1)
	updateN(t, src, 1)
	region.Unmount()
	updateN(t, src, 2)

	if !log.equal(EventMouseEnter, EventMouseLeave) {
		t.Errorf("events = %v", log.types)
	}
}

func TestPointerSource_ReturnsListenerErrors(t *testing.T) {
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	boom := errors.New("boom")
	region.AddEventListener(EventMouseEnter, func(Event) error { return boom }, ListenerOptions{})
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectCursor(1, 1)
	if err := src.Update(); !errors.Is(err, boom) {
		t.Errorf("Update error = %v, want boom", err)
	}
}

func TestPointerSource_DrivesTracker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PressDuration = 100 * time.Millisecond
	tr, err := NewTracker(cfg)
	if err != nil {
		t.Fatal(err)
	}
	region := NewRegion("box", Rect{Width: 4, Height: 4})
	if err := tr.Mount(region); err != nil {
		t.Fatal(err)
	}
	in := NewInjectedInput()
	src := NewPointerSource(region, in)

	in.InjectTouchPress(1, 1, 2)
	for i := 0; i < 10; i++ {
		updateN(t, src, 1)
		tr.Update(10 * time.Millisecond)
	}
	st := tr.State()
	if !st.IsActive || st.Position != (Vec2{X: 1, Y: 2}) {
		t.Errorf("state = %+v", st)
	}

	in.InjectTouchRelease(1)
	updateN(t, src, 1)
	if tr.State().IsActive {
		t.Error("release should deactivate")
	}
}
