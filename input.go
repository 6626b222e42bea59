package cursorpos

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputSnapshot is the pointer device state for one frame, in page
// coordinates.
type InputSnapshot struct {
	CursorX, CursorY float64
	Touches          []Touch
}

// InputReader reads the pointer device state once per frame.
type InputReader interface {
	ReadInput(dst *InputSnapshot)
}

// EbitenReader reads the cursor and touches from Ebitengine. Screen pixels
// are used as page coordinates.
type EbitenReader struct {
	ids []ebiten.TouchID
}

// ReadInput implements InputReader.
func (r *EbitenReader) ReadInput(dst *InputSnapshot) {
	mx, my := ebiten.CursorPosition()
	dst.CursorX, dst.CursorY = float64(mx), float64(my)

	r.ids = ebiten.AppendTouchIDs(r.ids[:0])
	dst.Touches = dst.Touches[:0]
	for _, id := range r.ids {
		tx, ty := ebiten.TouchPosition(id)
		dst.Touches = append(dst.Touches, Touch{ID: int(id), PageX: float64(tx), PageY: float64(ty)})
	}
}

// PointerSource turns per-frame device state into raw events on a Region:
// mouseenter, mousemove and mouseleave as the cursor crosses the region,
// and touchstart, touchmove and touchend for the first new touch that lands
// inside it. A touch keeps reporting to the region after it moves outside,
// until it is lifted.
type PointerSource struct {
	region *Region
	reader InputReader
	snap   InputSnapshot

	// Mouse
	hovering     bool
	lastX, lastY float64

	// Touch
	touching       bool
	touchID        int
	touchX, touchY float64
	prevIDs        []int
}

// NewPointerSource creates a source for region. A nil reader reads from
// Ebitengine.
func NewPointerSource(region *Region, reader InputReader) *PointerSource {
	if reader == nil {
		reader = &EbitenReader{}
	}
	return &PointerSource{region: region, reader: reader}
}

// Region returns the region events are dispatched on.
func (s *PointerSource) Region() *Region {
	return s.region
}

// Hovering reports whether the cursor is over the region.
func (s *PointerSource) Hovering() bool {
	return s.hovering
}

// Touching reports whether a touch that started on the region is down.
func (s *PointerSource) Touching() bool {
	return s.touching
}

// Update reads one frame of input and dispatches the resulting events.
// Errors returned by listeners are joined and returned.
func (s *PointerSource) Update() error {
	s.reader.ReadInput(&s.snap)

	var errs []error
	if !s.region.Mounted() {
		errs = append(errs, s.release())
	} else {
		errs = append(errs, s.processTouch(), s.processMouse())
	}

	s.prevIDs = s.prevIDs[:0]
	for _, t := range s.snap.Touches {
		s.prevIDs = append(s.prevIDs, t.ID)
	}
	return errors.Join(errs...)
}

// release ends any hover or touch, used when the region is unmounted.
func (s *PointerSource) release() error {
	var errs []error
	if s.touching {
		s.touching = false
		errs = append(errs, s.region.Dispatch(&TouchEvent{Kind: EventTouchCancel}))
	}
	if s.hovering {
		s.hovering = false
		errs = append(errs, s.region.Dispatch(&MouseEvent{Kind: EventMouseLeave, PageX: s.lastX, PageY: s.lastY}))
	}
	return errors.Join(errs...)
}

// processTouch follows the tracked touch, or starts tracking a new one.
// When the tracked touch lifts on the same frame another lands, the end and
// the new start are both dispatched.
func (s *PointerSource) processTouch() error {
	var endErr error
	if s.touching {
		t, ok := findTouch(s.snap.Touches, s.touchID)
		if ok {
			if t.PageX == s.touchX && t.PageY == s.touchY {
				return nil
			}
			s.touchX, s.touchY = t.PageX, t.PageY
			return s.region.Dispatch(&TouchEvent{Kind: EventTouchMove, Touches: s.orderedTouches(t)})
		}
		s.touching = false
		endErr = s.region.Dispatch(&TouchEvent{
			Kind:    EventTouchEnd,
			Touches: append([]Touch(nil), s.snap.Touches...),
		})
	}

	for _, t := range s.snap.Touches {
		if containsID(s.prevIDs, t.ID) || !s.region.Bounds.Contains(t.PageX, t.PageY) {
			continue
		}
		s.touching = true
		s.touchID = t.ID
		s.touchX, s.touchY = t.PageX, t.PageY
		return errors.Join(endErr, s.region.Dispatch(&TouchEvent{Kind: EventTouchStart, Touches: s.orderedTouches(t)}))
	}
	return endErr
}

// processMouse tracks the cursor against the region's bounds. It is skipped
// while a touch is down.
func (s *PointerSource) processMouse() error {
	if s.touching {
		return nil
	}
	cx, cy := s.snap.CursorX, s.snap.CursorY
	moved := cx != s.lastX || cy != s.lastY
	s.lastX, s.lastY = cx, cy
	inside := s.region.Bounds.Contains(cx, cy)

	switch {
	case inside && !s.hovering:
		s.hovering = true
		return s.region.Dispatch(&MouseEvent{Kind: EventMouseEnter, PageX: cx, PageY: cy})
	case inside && moved:
		return s.region.Dispatch(&MouseEvent{Kind: EventMouseMove, PageX: cx, PageY: cy})
	case !inside && s.hovering:
		s.hovering = false
		return s.region.Dispatch(&MouseEvent{Kind: EventMouseLeave, PageX: cx, PageY: cy})
	}
	return nil
}

// orderedTouches returns the active touches with the tracked touch first.
// The result is a fresh slice since listeners may keep the event.
func (s *PointerSource) orderedTouches(tracked Touch) []Touch {
	out := make([]Touch, 0, len(s.snap.Touches))
	out = append(out, tracked)
	for _, t := range s.snap.Touches {
		if t.ID != tracked.ID {
			out = append(out, t)
		}
	}
	return out
}

func findTouch(touches []Touch, id int) (Touch, bool) {
	for _, t := range touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
