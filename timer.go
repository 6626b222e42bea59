package cursorpos

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TimerHandle identifies one scheduled timer.
type TimerHandle uint64

// timerEntry is a named delayed callback. The tween runs from 0 to 1 over
// the delay, measured in milliseconds so whole-millisecond steps stay exact.
type timerEntry struct {
	name      string
	handle    TimerHandle
	tween     *gween.Tween
	fn        func()
	immediate bool // zero delay: due on the next Advance whatever its dt
}

// TimerRegistry keeps named, cancelable delayed callbacks. Timers do not run
// on their own: Advance moves them forward and fires the ones that are due,
// so all callbacks happen on the caller's goroutine.
//
// Names are not unique. Scheduling under a name that already has pending
// entries keeps them; call CancelByName first to supersede them.
type TimerRegistry struct {
	entries []*timerEntry
	nextID  TimerHandle
}

// NewTimerRegistry creates an empty registry.
func NewTimerRegistry() *TimerRegistry {
	return &TimerRegistry{}
}

// Schedule starts a timer that calls fn once delay has elapsed. A zero or
// negative delay fires on the next Advance.
func (r *TimerRegistry) Schedule(name string, delay time.Duration, fn func()) TimerHandle {
	if delay < 0 {
		delay = 0
	}
	r.nextID++
	r.entries = append(r.entries, &timerEntry{
		name:      name,
		handle:    r.nextID,
		tween:     gween.New(0, 1, durationMillis(delay), ease.Linear),
		fn:        fn,
		immediate: delay == 0,
	})
	return r.nextID
}

// CancelByName cancels every pending timer with the given name, newest
// first, and returns how many were canceled.
func (r *TimerRegistry) CancelByName(name string) int {
	n := 0
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].name == name {
			r.removeAt(i)
			n++
		}
	}
	return n
}

// Cancel cancels a single timer. It reports false if the timer already
// fired or was canceled.
func (r *TimerRegistry) Cancel(h TimerHandle) bool {
	for i := range r.entries {
		if r.entries[i].handle == h {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// CancelAll cancels every pending timer, newest first, and returns how many
// were canceled. Calling it on an empty registry is a no-op.
func (r *TimerRegistry) CancelAll() int {
	n := len(r.entries)
	for i := n - 1; i >= 0; i-- {
		r.entries[i] = nil
	}
	r.entries = r.entries[:0]
	return n
}

// Pending reports whether any timer with the given name is waiting.
func (r *TimerRegistry) Pending(name string) bool {
	for _, e := range r.entries {
		if e.name == name {
			return true
		}
	}
	return false
}

// Progress returns how far the newest timer with the given name has run, in
// [0, 1]. ok is false when no such timer is pending.
func (r *TimerRegistry) Progress(name string) (progress float64, ok bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.name == name {
			v, _ := e.tween.Update(0)
			return float64(v), true
		}
	}
	return 0, false
}

// Len returns the number of pending timers.
func (r *TimerRegistry) Len() int {
	return len(r.entries)
}

// Advance moves every pending timer forward by dt and fires the ones that
// are due, in the order they were scheduled. A due timer is removed before
// its callback runs. A timer canceled by an earlier callback in the same
// Advance does not fire, and timers scheduled by a callback start counting
// on the next Advance.
func (r *TimerRegistry) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	step := durationMillis(dt)

	var due []TimerHandle
	for _, e := range r.entries {
		if _, finished := e.tween.Update(step); finished || e.immediate {
			due = append(due, e.handle)
		}
	}

	for _, h := range due {
		e := r.take(h)
		if e == nil {
			continue
		}
		e.fn()
	}
}

// take removes and returns the entry with handle h, or nil.
func (r *TimerRegistry) take(h TimerHandle) *timerEntry {
	for i, e := range r.entries {
		if e.handle == h {
			r.removeAt(i)
			return e
		}
	}
	return nil
}

func (r *TimerRegistry) removeAt(i int) {
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = nil
	r.entries = r.entries[:len(r.entries)-1]
}

func durationMillis(d time.Duration) float32 {
	return float32(float64(d) / float64(time.Millisecond))
}
