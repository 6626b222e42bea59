package cursorpos

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Timer names used by the tracker.
const (
	timerActivate   = "activate"   // touch press duration
	timerHover      = "hover"      // mouse hover intent
	timerMouseGuard = "mouseguard" // ends the emulated-mouse window
)

// Tracker is the interaction state machine. It consumes raw pointer events,
// keeps the State for one tracked element, and reports changes through the
// Config callbacks.
//
// Touch and mouse gestures are mutually exclusive. Mouse events are ignored
// while a touch press is in progress and for a short window after it ends,
// since devices emulate mouse input at the tap point. A touch that starts
// while the cursor hovers the element ends the hover and takes over.
//
// A Tracker is not safe for concurrent use. All methods, including Update,
// are expected to run on the game's update goroutine.
type Tracker struct {
	// EntityID links the tracker to an ECS entity. Events are only sent to
	// the EntityStore when it is non-zero.
	EntityID uint32

	cfg       Config
	state     State
	timers    *TimerRegistry
	listeners Listeners
	store     EntityStore

	modality    Modality
	pressTarget Element
	pressOrigin Vec2
	guardMouse  bool

	closed   bool
	debug    bool
	debugOut io.Writer
}

// NewTracker creates a tracker with the given configuration.
func NewTracker(cfg Config) (*Tracker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MapState == nil {
		cfg.MapState = MapStateIdentity
	}
	if cfg.ProgressEase == nil {
		cfg.ProgressEase = ease.Linear
	}
	return &Tracker{
		cfg:    cfg,
		state:  initialState(),
		timers: NewTimerRegistry(),
	}, nil
}

// Config returns the tracker's configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// State returns the current interaction snapshot.
func (t *Tracker) State() State {
	return t.state
}

// Props returns the state reshaped by Config.MapState.
func (t *Tracker) Props() map[string]any {
	return t.cfg.MapState(t.state)
}

// Modality returns the gesture currently in progress.
func (t *Tracker) Modality() Modality {
	return t.modality
}

// SetEntityStore sets the ECS bridge. Pass nil to disable.
func (t *Tracker) SetEntityStore(store EntityStore) {
	t.store = store
}

// Closed reports whether Close has been called.
func (t *Tracker) Closed() bool {
	return t.closed
}

// Mount binds the tracker's listeners on target. Touch start and move are
// bound non-passive so the tracker can suppress the default touch gesture.
func (t *Tracker) Mount(target EventTarget) error {
	if t.closed {
		return fmt.Errorf("cursorpos: mount: %w", ErrClosed)
	}
	if t.listeners.Len() > 0 {
		return ErrAlreadyMounted
	}
	for typ := EventType(0); typ < eventTypeCount; typ++ {
		t.listeners.Add(target, typ, t.Handle, trackerListenerOptions[typ])
	}
	t.debugf("mounted %d listeners", t.listeners.Len())
	return nil
}

// Close cancels all pending timers and unbinds all listeners. No callback
// fires afterwards and every handler returns ErrClosed. Calling Close again
// is a no-op.
func (t *Tracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	n := t.timers.CancelAll()
	t.listeners.RemoveAll()
	t.modality = ModalityNone
	t.pressTarget = nil
	t.guardMouse = false
	t.debugf("closed (%d timers canceled)", n)
}

// Update advances the tracker's timers by dt. Call it once per frame.
func (t *Tracker) Update(dt time.Duration) {
	if t.closed {
		return
	}
	t.timers.Advance(dt)
}

// ActivationProgress reports how far a pending activation has run, shaped by
// Config.ProgressEase. It returns 1 when active and 0 when nothing is
// pending.
func (t *Tracker) ActivationProgress() float64 {
	if t.state.IsActive {
		return 1
	}
	p, ok := t.timers.Progress(timerActivate)
	if !ok {
		p, ok = t.timers.Progress(timerHover)
	}
	if !ok {
		return 0
	}
	return float64(t.cfg.ProgressEase(float32(p), 0, 1, 1))
}

// Handle routes a raw event to the matching handler.
func (t *Tracker) Handle(ev Event) error {
	switch e := ev.(type) {
	case *TouchEvent:
		switch e.Kind {
		case EventTouchStart:
			return t.HandleTouchStart(e)
		case EventTouchMove:
			return t.HandleTouchMove(e)
		case EventTouchEnd:
			return t.HandleTouchEnd(e)
		case EventTouchCancel:
			return t.HandleTouchCancel(e)
		}
	case *MouseEvent:
		switch e.Kind {
		case EventMouseEnter:
			return t.HandleMouseEnter(e)
		case EventMouseMove:
			return t.HandleMouseMove(e)
		case EventMouseLeave:
			return t.HandleMouseLeave(e)
		}
	}
	return nil
}

// --- Touch ---

// HandleTouchStart begins a touch press.
func (t *Tracker) HandleTouchStart(e *TouchEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: touchstart: %w", ErrClosed)
	}
	e.PreventDefault()
	p, ok := FromTouch(e)
	if !ok {
		return nil
	}
	box, err := Measure(p.Target)
	if err != nil {
		return fmt.Errorf("cursorpos: touchstart: %w", err)
	}

	endsHover := t.modality == ModalityMouse
	if endsHover {
		t.timers.CancelByName(timerHover)
		t.debugf("touch takes over from hover")
	}
	t.timers.CancelByName(timerMouseGuard)
	t.modality = ModalityTouch
	t.guardMouse = true
	t.pressTarget = p.Target
	t.pressOrigin = Vec2{X: p.X, Y: p.Y}

	t.detect(ModalityTouch)
	if t.closed {
		return nil
	}
	if endsHover && t.state.IsActive {
		t.setActive(false)
		if t.closed {
			return nil
		}
	}
	t.setPosition(box, p)

	t.timers.CancelByName(timerActivate)
	if t.cfg.IsActivatedOnTouch {
		t.setActive(true)
		if t.closed {
			return nil
		}
	} else {
		t.timers.Schedule(timerActivate, t.cfg.PressDuration, t.activatePress)
	}

	t.notifyPosition()
	t.notifyUpdate()
	return nil
}

// HandleTouchMove updates the position during a press and abandons a pending
// activation once the touch has moved beyond the threshold.
func (t *Tracker) HandleTouchMove(e *TouchEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: touchmove: %w", ErrClosed)
	}
	if t.modality != ModalityTouch {
		return nil
	}
	e.PreventDefault()
	p, ok := FromTouch(e)
	if !ok {
		return nil
	}
	box, err := Measure(t.pressTarget)
	if err != nil {
		return fmt.Errorf("cursorpos: touchmove: %w", err)
	}
	t.setPosition(box, p)

	if t.timers.Pending(timerActivate) {
		dist := math.Hypot(p.X-t.pressOrigin.X, p.Y-t.pressOrigin.Y)
		if dist > t.cfg.PressMoveThreshold {
			t.timers.CancelByName(timerActivate)
			t.debugf("press abandoned: moved %.1fpx (threshold %.1fpx)", dist, t.cfg.PressMoveThreshold)
		}
	}

	t.notifyPosition()
	t.notifyUpdate()
	return nil
}

// HandleTouchEnd ends the press and deactivates.
func (t *Tracker) HandleTouchEnd(e *TouchEvent) error {
	return t.endTouch(e)
}

// HandleTouchCancel behaves like HandleTouchEnd.
func (t *Tracker) HandleTouchCancel(e *TouchEvent) error {
	return t.endTouch(e)
}

func (t *Tracker) endTouch(e *TouchEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: %s: %w", e.Kind, ErrClosed)
	}
	if t.modality != ModalityTouch {
		return nil
	}
	t.timers.CancelByName(timerActivate)
	t.modality = ModalityNone
	t.pressTarget = nil
	t.timers.Schedule(timerMouseGuard, mouseEmulationWindow, t.endMouseGuard)
	t.setActive(false)
	if t.closed {
		return nil
	}
	t.notifyUpdate()
	return nil
}

func (t *Tracker) endMouseGuard() {
	t.guardMouse = false
}

// mouseBlocked reports whether mouse events are ignored: during a touch
// press and in the emulated-mouse window after it.
func (t *Tracker) mouseBlocked(kind EventType) bool {
	if t.modality == ModalityTouch || t.guardMouse {
		t.debugf("%s ignored after touch", kind)
		return true
	}
	return false
}

func (t *Tracker) activatePress() {
	if t.closed {
		return
	}
	t.debugf("press held for %v", t.cfg.PressDuration)
	t.setActive(true)
	if t.closed {
		return
	}
	t.notifyUpdate()
}

// --- Mouse ---

// HandleMouseEnter starts a hover and schedules hover-intent activation.
func (t *Tracker) HandleMouseEnter(e *MouseEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: mouseenter: %w", ErrClosed)
	}
	if t.mouseBlocked(e.Kind) {
		return nil
	}
	p := FromMouse(e)
	box, err := Measure(p.Target)
	if err != nil {
		return fmt.Errorf("cursorpos: mouseenter: %w", err)
	}

	t.modality = ModalityMouse
	t.detect(ModalityMouse)
	if t.closed {
		return nil
	}
	t.setPosition(box, p)

	t.timers.CancelByName(timerHover)
	t.timers.Schedule(timerHover, hoverIntentDelay, t.activateHover)

	t.notifyPosition()
	t.notifyUpdate()
	return nil
}

// HandleMouseMove updates the position whether or not the hover has
// activated yet.
func (t *Tracker) HandleMouseMove(e *MouseEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: mousemove: %w", ErrClosed)
	}
	if t.mouseBlocked(e.Kind) {
		return nil
	}
	p := FromMouse(e)
	box, err := Measure(p.Target)
	if err != nil {
		return fmt.Errorf("cursorpos: mousemove: %w", err)
	}
	t.setPosition(box, p)
	t.notifyPosition()
	t.notifyUpdate()
	return nil
}

// HandleMouseLeave cancels a pending hover activation and deactivates.
// The last position is kept but reported as outside.
func (t *Tracker) HandleMouseLeave(e *MouseEvent) error {
	if t.closed {
		return fmt.Errorf("cursorpos: mouseleave: %w", ErrClosed)
	}
	if t.mouseBlocked(e.Kind) {
		return nil
	}
	t.timers.CancelByName(timerHover)
	t.modality = ModalityNone
	t.state.IsPositionOutside = true
	t.setActive(false)
	if t.closed {
		return nil
	}
	t.notifyPosition()
	t.notifyUpdate()
	return nil
}

func (t *Tracker) activateHover() {
	if t.closed {
		return
	}
	if t.state.IsPositionOutside {
		t.debugf("hover intent expired outside the element")
		return
	}
	t.setActive(true)
	if t.closed {
		return
	}
	t.notifyUpdate()
}

// --- State updates ---

func (t *Tracker) setPosition(box Box, p Point) {
	t.state.ElementDimensions = box.Dimensions()
	t.state.Position = ToRelative(box, p.X, p.Y)
	t.state.IsPositionOutside = !IsInside(box, p.X, p.Y)
}

// detect records that modality m has been seen. The callback only fires on
// the first detection of each modality.
func (t *Tracker) detect(m Modality) {
	env := t.state.DetectedEnvironment
	switch m {
	case ModalityTouch:
		if env.IsTouchDetected {
			return
		}
		env.IsTouchDetected = true
	case ModalityMouse:
		if env.IsMouseDetected {
			return
		}
		env.IsMouseDetected = true
	default:
		return
	}
	t.state.DetectedEnvironment = env
	t.debugf("%s detected", m)

	if t.closed {
		return
	}
	if t.cfg.OnDetectedEnvironmentChanged != nil {
		t.cfg.OnDetectedEnvironmentChanged(env)
	}
	t.emit(ChangeEnvironment)
}

func (t *Tracker) setActive(active bool) {
	if t.closed {
		return
	}
	if t.state.IsActive != active {
		t.debugf("active=%v", active)
	}
	t.state.IsActive = active
	if t.cfg.OnActivationChanged != nil {
		t.cfg.OnActivationChanged(ActivationChange{IsActive: active})
	}
	t.emit(ChangeActivation)
}

func (t *Tracker) notifyPosition() {
	if t.closed {
		return
	}
	if t.cfg.OnPositionChanged != nil {
		t.cfg.OnPositionChanged(PositionChange{
			ElementDimensions: t.state.ElementDimensions,
			IsPositionOutside: t.state.IsPositionOutside,
			Position:          t.state.Position,
		})
	}
	t.emit(ChangePosition)
}

func (t *Tracker) notifyUpdate() {
	if t.closed {
		return
	}
	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(t.state)
	}
}

func (t *Tracker) emit(kind ChangeKind) {
	if t.store == nil || t.EntityID == 0 {
		return
	}
	t.store.EmitEvent(InteractionEvent{Kind: kind, EntityID: t.EntityID, State: t.state})
}
