package cursorpos

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables transition logging. Lines are written to stderr
// unless SetDebugOutput supplies another writer.
func (t *Tracker) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// SetDebugOutput redirects debug logging. Pass nil to restore stderr.
func (t *Tracker) SetDebugOutput(w io.Writer) {
	t.debugOut = w
}

// debugf prints one "[cursorpos]" line when debug mode is on.
func (t *Tracker) debugf(format string, args ...any) {
	if !t.debug {
		return
	}
	w := t.debugOut
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[cursorpos] "+format+"\n", args...)
}

// String formats the state on one line for logs and overlays.
func (s State) String() string {
	return fmt.Sprintf("pos=(%.0f,%.0f) size=%.0fx%.0f active=%v outside=%v mouse=%v touch=%v",
		s.Position.X, s.Position.Y,
		s.ElementDimensions.Width, s.ElementDimensions.Height,
		s.IsActive, s.IsPositionOutside,
		s.DetectedEnvironment.IsMouseDetected, s.DetectedEnvironment.IsTouchDetected)
}
