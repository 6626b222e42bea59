package cursorpos

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

const (
	// DefaultPressDuration is how long a touch must be held before it
	// activates, unless Config.IsActivatedOnTouch is set.
	DefaultPressDuration = 500 * time.Millisecond

	// DefaultPressMoveThreshold is how far, in pixels, a touch may move
	// during the press before activation is abandoned.
	DefaultPressMoveThreshold = 5.0

	// hoverIntentDelay defers mouse activation so the cursor passing over
	// the element does not activate it.
	hoverIntentDelay = 150 * time.Millisecond

	// mouseEmulationWindow is how long mouse events are ignored after a
	// touch ends. Browsers and touch-to-mouse promotion move the cursor to
	// the tap point once the finger lifts.
	mouseEmulationWindow = 500 * time.Millisecond
)

// Config configures a Tracker. Start from DefaultConfig; the zero value has
// a zero press duration and threshold, which are valid but rarely wanted.
type Config struct {
	// IsActivatedOnTouch activates on touch start instead of after a press.
	IsActivatedOnTouch bool

	// PressDuration is how long a touch must be held to activate. Touch only.
	PressDuration time.Duration

	// PressMoveThreshold is the straight-line distance in pixels a touch may
	// move during the press and still activate. Touch only.
	PressMoveThreshold float64

	// ShouldDecorateChildren is not used by the tracker. It is carried for
	// view layers that decide whether to forward state to child elements.
	ShouldDecorateChildren bool

	// OnActivationChanged is called when activation is granted or revoked.
	OnActivationChanged func(ActivationChange)

	// OnPositionChanged is called after every event that updates the
	// position or the inside/outside flag.
	OnPositionChanged func(PositionChange)

	// OnDetectedEnvironmentChanged is called the first time each input
	// modality is seen.
	OnDetectedEnvironmentChanged func(DetectedEnvironment)

	// OnUpdate receives the full state after every processed event and
	// every fired timer.
	OnUpdate func(State)

	// MapState reshapes the state for Tracker.Props. Nil uses MapStateIdentity.
	MapState func(State) map[string]any

	// ProgressEase shapes Tracker.ActivationProgress. Nil uses ease.Linear.
	ProgressEase ease.TweenFunc
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PressDuration:          DefaultPressDuration,
		PressMoveThreshold:     DefaultPressMoveThreshold,
		ShouldDecorateChildren: true,
	}
}

func (c Config) validate() error {
	if c.PressDuration < 0 {
		return fmt.Errorf("cursorpos: press duration %v is negative", c.PressDuration)
	}
	if c.PressMoveThreshold < 0 {
		return fmt.Errorf("cursorpos: press move threshold %v is negative", c.PressMoveThreshold)
	}
	return nil
}

// MapStateIdentity exposes the state under its field names, the way a view
// layer would pass it to children unchanged.
func MapStateIdentity(s State) map[string]any {
	return map[string]any{
		"detectedEnvironment": s.DetectedEnvironment,
		"elementDimensions":   s.ElementDimensions,
		"isActive":            s.IsActive,
		"isPositionOutside":   s.IsPositionOutside,
		"position":            s.Position,
	}
}
