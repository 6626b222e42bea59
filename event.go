package cursorpos

// Event is a raw pointer event delivered by an EventTarget.
type Event interface {
	// Type returns the event kind.
	Type() EventType

	// deliver prepares the event for one listener.
	deliver(target Element, passive bool)
}

// MouseEvent is a raw mouse event in page coordinates.
type MouseEvent struct {
	Kind          EventType
	PageX, PageY  float64
	CurrentTarget Element
}

// Type returns the event kind.
func (e *MouseEvent) Type() EventType { return e.Kind }

func (e *MouseEvent) deliver(target Element, _ bool) {
	e.CurrentTarget = target
}

// Touch is one active touch point in page coordinates.
type Touch struct {
	ID           int
	PageX, PageY float64
}

// TouchEvent is a raw touch event. Touches lists the touches still on the
// surface, so it is usually empty for touchend and touchcancel.
type TouchEvent struct {
	Kind          EventType
	Touches       []Touch
	CurrentTarget Element

	passive          bool
	defaultPrevented bool
}

// Type returns the event kind.
func (e *TouchEvent) Type() EventType { return e.Kind }

func (e *TouchEvent) deliver(target Element, passive bool) {
	e.CurrentTarget = target
	e.passive = passive
}

// PreventDefault asks the host to suppress its default touch gesture
// (scrolling, zooming). It has no effect inside a passive listener.
func (e *TouchEvent) PreventDefault() {
	if e.passive {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a non-passive listener called
// PreventDefault.
func (e *TouchEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Point is a normalized pointer position in page coordinates together with
// the element the listener was bound to.
type Point struct {
	X, Y   float64
	Target Element
}

// FromMouse normalizes a mouse event.
func FromMouse(e *MouseEvent) Point {
	return Point{X: e.PageX, Y: e.PageY, Target: e.CurrentTarget}
}

// FromTouch normalizes a touch event using its first active touch. ok is
// false when no touches remain.
func FromTouch(e *TouchEvent) (p Point, ok bool) {
	if len(e.Touches) == 0 {
		return Point{}, false
	}
	t := e.Touches[0]
	return Point{X: t.PageX, Y: t.PageY, Target: e.CurrentTarget}, true
}
