package cursorpos

// offscreen is where InjectedInput parks the cursor when it is hidden.
const offscreen = -1e9

type syntheticOp uint8

const (
	opIdle syntheticOp = iota
	opCursor
	opTouchPress
	opTouchMove
	opTouchRelease
)

// syntheticInput is one queued change to the injected device state.
type syntheticInput struct {
	op   syntheticOp
	id   int
	x, y float64
}

// InjectedInput is an InputReader driven by queued synthetic input instead
// of real devices. Each ReadInput applies at most one queued change, so one
// change is observed per frame. When the queue is empty the last state is
// repeated.
type InjectedInput struct {
	queue   []syntheticInput
	cursorX float64
	cursorY float64
	touches []Touch
}

// NewInjectedInput creates an injector with the cursor off screen and no
// touches down.
func NewInjectedInput() *InjectedInput {
	return &InjectedInput{cursorX: offscreen, cursorY: offscreen}
}

// InjectCursor queues a cursor move to (x, y).
func (in *InjectedInput) InjectCursor(x, y float64) {
	in.queue = append(in.queue, syntheticInput{op: opCursor, x: x, y: y})
}

// InjectCursorOut queues moving the cursor off screen.
func (in *InjectedInput) InjectCursorOut() {
	in.InjectCursor(offscreen, offscreen)
}

// InjectTouchPress queues a new touch with the given id at (x, y).
func (in *InjectedInput) InjectTouchPress(id int, x, y float64) {
	in.queue = append(in.queue, syntheticInput{op: opTouchPress, id: id, x: x, y: y})
}

// InjectTouchMove queues moving touch id to (x, y).
func (in *InjectedInput) InjectTouchMove(id int, x, y float64) {
	in.queue = append(in.queue, syntheticInput{op: opTouchMove, id: id, x: x, y: y})
}

// InjectTouchRelease queues lifting touch id.
func (in *InjectedInput) InjectTouchRelease(id int) {
	in.queue = append(in.queue, syntheticInput{op: opTouchRelease, id: id})
}

// InjectIdle queues a frame with no change.
func (in *InjectedInput) InjectIdle() {
	in.queue = append(in.queue, syntheticInput{op: opIdle})
}

// InjectTouchDrag queues a full touch sequence: press at (fromX, fromY),
// frames-1 linearly interpolated moves ending at (toX, toY), then the
// release. The touch is down for frames reads and released on the next.
// Minimum frames is 2.
func (in *InjectedInput) InjectTouchDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectTouchPress(id, fromX, fromY)
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.InjectTouchMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectTouchRelease(id)
}

// Pending returns the number of queued changes.
func (in *InjectedInput) Pending() int {
	return len(in.queue)
}

// ReadInput implements InputReader.
func (in *InjectedInput) ReadInput(dst *InputSnapshot) {
	if len(in.queue) > 0 {
		evt := in.queue[0]
		copy(in.queue, in.queue[1:])
		in.queue = in.queue[:len(in.queue)-1]
		in.apply(evt)
	}
	dst.CursorX, dst.CursorY = in.cursorX, in.cursorY
	dst.Touches = append(dst.Touches[:0], in.touches...)
}

func (in *InjectedInput) apply(evt syntheticInput) {
	switch evt.op {
	case opCursor:
		in.cursorX, in.cursorY = evt.x, evt.y
	case opTouchPress, opTouchMove:
		for i := range in.touches {
			if in.touches[i].ID == evt.id {
				in.touches[i].PageX, in.touches[i].PageY = evt.x, evt.y
				return
			}
		}
		in.touches = append(in.touches, Touch{ID: evt.id, PageX: evt.x, PageY: evt.y})
	case opTouchRelease:
		for i := range in.touches {
			if in.touches[i].ID == evt.id {
				in.touches = append(in.touches[:i], in.touches[i+1:]...)
				return
			}
		}
	}
}
