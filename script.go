package cursorpos

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"mouse": true, "mouseout": true,
	"touch": true, "touchmove": true, "release": true,
	"drag": true, "wait": true,
}

// Script replays a JSON gesture script frame by frame. It is an InputReader,
// so it can be handed straight to NewPointerSource.
//
//	{"steps": [
//		{"action": "touch", "x": 10, "y": 10},
//		{"action": "wait", "frames": 40},
//		{"action": "release"}
//	]}
//
// Actions: mouse (x, y), mouseout, touch (id, x, y), touchmove (id, x, y),
// release (id), drag (id, fromX, fromY, toX, toY, frames), wait (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	input     *InjectedInput
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("cursorpos: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("cursorpos: parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("cursorpos: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, input: NewInjectedInput()}, nil
}

// Done reports whether every step has run and all injected input has been
// read.
func (s *Script) Done() bool {
	return s.done
}

// ReadInput advances the script by one frame and reports the injected
// device state.
func (s *Script) ReadInput(dst *InputSnapshot) {
	s.step()
	s.input.ReadInput(dst)
	if s.cursor >= len(s.steps) && s.waitCount == 0 && s.input.Pending() == 0 {
		s.done = true
	}
}

// step queues the next action unless injected input is still draining or a
// wait is in progress.
func (s *Script) step() {
	if s.done || s.input.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "mouse":
		s.input.InjectCursor(st.X, st.Y)
	case "mouseout":
		s.input.InjectCursorOut()
	case "touch":
		s.input.InjectTouchPress(st.ID, st.X, st.Y)
	case "touchmove":
		s.input.InjectTouchMove(st.ID, st.X, st.Y)
	case "release":
		s.input.InjectTouchRelease(st.ID)
	case "drag":
		s.input.InjectTouchDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
