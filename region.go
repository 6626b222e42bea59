package cursorpos

import (
	"errors"
	"fmt"
)

// Handler handles one raw event.
type Handler func(Event) error

// ListenerOptions controls how a listener receives events.
type ListenerOptions struct {
	// Passive listeners cannot call TouchEvent.PreventDefault.
	Passive bool
}

// ListenerID identifies a listener bound to an EventTarget.
type ListenerID uint32

// EventTarget accepts listeners for raw pointer events.
type EventTarget interface {
	Element
	AddEventListener(t EventType, h Handler, opts ListenerOptions) ListenerID
	// RemoveEventListener unbinds a listener. It reports false if the
	// listener was not bound; that is not an error.
	RemoveEventListener(t EventType, id ListenerID) bool
}

type listener struct {
	id   ListenerID
	fn   Handler
	opts ListenerOptions
}

// Region is a rectangular element that can be mounted, measured, and
// listened to. Events are delivered by Dispatch, usually from a
// PointerSource.
type Region struct {
	Name string

	// Bounds is the region's rectangle in page coordinates. It may be
	// changed between frames; every measurement reads the current value.
	Bounds Rect

	unmounted bool
	listeners [eventTypeCount][]listener
	nextID    ListenerID
}

// NewRegion creates a mounted region with the given bounds.
func NewRegion(name string, bounds Rect) *Region {
	return &Region{Name: name, Bounds: bounds}
}

// BoundingBox returns the region's bounds, or ErrDetached after Unmount.
func (r *Region) BoundingBox() (Rect, error) {
	if r.unmounted {
		return Rect{}, fmt.Errorf("region %q: %w", r.Name, ErrDetached)
	}
	return r.Bounds, nil
}

// Mounted reports whether the region can be measured.
func (r *Region) Mounted() bool {
	return !r.unmounted
}

// Mount makes the region measurable again after Unmount.
func (r *Region) Mount() {
	r.unmounted = false
}

// Unmount detaches the region. Measuring it fails until Mount is called.
// Listeners stay bound.
func (r *Region) Unmount() {
	r.unmounted = true
}

// AddEventListener binds h for events of type t.
func (r *Region) AddEventListener(t EventType, h Handler, opts ListenerOptions) ListenerID {
	r.nextID++
	id := r.nextID
	r.listeners[t] = append(r.listeners[t], listener{id: id, fn: h, opts: opts})
	return id
}

// RemoveEventListener unbinds the listener with the given id.
func (r *Region) RemoveEventListener(t EventType, id ListenerID) bool {
	if t >= eventTypeCount {
		return false
	}
	s := r.listeners[t]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			r.listeners[t] = s[:len(s)-1]
			return true
		}
	}
	return false
}

// ListenerCount returns how many listeners are bound for t.
func (r *Region) ListenerCount(t EventType) int {
	if t >= eventTypeCount {
		return 0
	}
	return len(r.listeners[t])
}

// Dispatch delivers ev to every listener bound for its type, in the order
// they were added. The event's CurrentTarget is set to the region. Errors
// from handlers are joined; every listener runs regardless.
func (r *Region) Dispatch(ev Event) error {
	t := ev.Type()
	if t >= eventTypeCount || len(r.listeners[t]) == 0 {
		return nil
	}
	// Handlers may unbind listeners while we iterate.
	snapshot := append([]listener(nil), r.listeners[t]...)

	var errs []error
	for _, l := range snapshot {
		ev.deliver(r, l.opts.Passive)
		if err := l.fn(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
