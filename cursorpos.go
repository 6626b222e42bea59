package cursorpos

import "errors"

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Dimensions is the size of the tracked element.
type Dimensions struct {
	Width, Height float64
}

// DetectedEnvironment records which input modalities have been observed.
// Each flag only ever goes from false to true.
type DetectedEnvironment struct {
	IsMouseDetected bool
	IsTouchDetected bool
}

// State is the interaction snapshot produced by a Tracker.
type State struct {
	DetectedEnvironment DetectedEnvironment
	ElementDimensions   Dimensions
	IsActive            bool
	IsPositionOutside   bool
	Position            Vec2
}

// initialState is the snapshot before any event has been processed.
func initialState() State {
	return State{IsPositionOutside: true}
}

// PositionChange is the state slice passed to Config.OnPositionChanged.
type PositionChange struct {
	ElementDimensions Dimensions
	IsPositionOutside bool
	Position          Vec2
}

// ActivationChange is the state slice passed to Config.OnActivationChanged.
type ActivationChange struct {
	IsActive bool
}

// EventType identifies a raw pointer event.
type EventType uint8

const (
	EventTouchStart  EventType = iota // a finger touched the element
	EventTouchMove                    // a finger that started on the element moved
	EventTouchEnd                     // the finger was lifted
	EventTouchCancel                  // the platform aborted the touch
	EventMouseEnter                   // the cursor entered the element's bounds
	EventMouseMove                    // the cursor moved inside the element
	EventMouseLeave                   // the cursor left the element's bounds

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"touchstart", "touchmove", "touchend", "touchcancel",
	"mouseenter", "mousemove", "mouseleave",
}

// String returns the DOM-style event name, e.g. "touchstart".
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// IsTouch reports whether t belongs to the touch modality.
func (t EventType) IsTouch() bool {
	return t <= EventTouchCancel
}

// Modality is an input channel.
type Modality uint8

const (
	ModalityNone  Modality = iota // no gesture in progress
	ModalityTouch                 // a touch press is in progress
	ModalityMouse                 // the cursor is hovering the element
)

func (m Modality) String() string {
	switch m {
	case ModalityTouch:
		return "touch"
	case ModalityMouse:
		return "mouse"
	default:
		return "none"
	}
}

var (
	// ErrDetached is returned when geometry is read from an element that is
	// nil or not mounted.
	ErrDetached = errors.New("cursorpos: element is not mounted")

	// ErrClosed is returned by a Tracker after Close.
	ErrClosed = errors.New("cursorpos: tracker is closed")

	// ErrAlreadyMounted is returned by Tracker.Mount when listeners are
	// already bound.
	ErrAlreadyMounted = errors.New("cursorpos: tracker is already mounted")
)
