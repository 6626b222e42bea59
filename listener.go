package cursorpos

// binding is one listener bound through a Listeners set.
type binding struct {
	target EventTarget
	typ    EventType
	id     ListenerID
}

// Listeners records the listeners an owner has bound so they can all be
// released together.
type Listeners struct {
	bound []binding
}

// Add binds h on target and records the binding.
func (l *Listeners) Add(target EventTarget, t EventType, h Handler, opts ListenerOptions) {
	id := target.AddEventListener(t, h, opts)
	l.bound = append(l.bound, binding{target: target, typ: t, id: id})
}

// RemoveAll unbinds every recorded listener in the order it was bound and
// clears the set. Listeners already removed elsewhere are skipped, so this
// is safe to call more than once.
func (l *Listeners) RemoveAll() {
	for i, b := range l.bound {
		b.target.RemoveEventListener(b.typ, b.id)
		l.bound[i] = binding{}
	}
	l.bound = l.bound[:0]
}

// Len returns the number of recorded bindings.
func (l *Listeners) Len() int {
	return len(l.bound)
}

// trackerListenerOptions lists the events a Tracker binds. Touch start and
// move must be non-passive so the default touch gesture can be suppressed.
var trackerListenerOptions = [eventTypeCount]ListenerOptions{
	EventTouchStart:  {Passive: false},
	EventTouchMove:   {Passive: false},
	EventTouchEnd:    {Passive: true},
	EventTouchCancel: {Passive: true},
	EventMouseEnter:  {Passive: true},
	EventMouseMove:   {Passive: true},
	EventMouseLeave:  {Passive: true},
}
