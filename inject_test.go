package cursorpos

import "testing"

func TestInjectedInput_OneChangePerRead(t *testing.T) {
	in := NewInjectedInput()
	in.InjectCursor(10, 20)
	in.InjectCursor(30, 40)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued changes, got %d", in.Pending())
	}

	var snap InputSnapshot
	in.ReadInput(&snap)
	if snap.CursorX != 10 || snap.CursorY != 20 {
		t.Errorf("frame 1 cursor = (%v,%v)", snap.CursorX, snap.CursorY)
	}
	in.ReadInput(&snap)
	if snap.CursorX != 30 || snap.CursorY != 40 {
		t.Errorf("frame 2 cursor = (%v,%v)", snap.CursorX, snap.CursorY)
	}
	if in.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", in.Pending())
	}

	// The last state repeats once the queue is empty.
	in.ReadInput(&snap)
	if snap.CursorX != 30 || snap.CursorY != 40 {
		t.Errorf("frame 3 cursor = (%v,%v)", snap.CursorX, snap.CursorY)
	}
}

func TestInjectedInput_StartsOffscreen(t *testing.T) {
	in := NewInjectedInput()
	var snap InputSnapshot
	in.ReadInput(&snap)
	if snap.CursorX != offscreen || snap.CursorY != offscreen || len(snap.Touches) != 0 {
		t.Errorf("initial snapshot = %+v", snap)
	}

	in.InjectCursor(1, 1)
	in.InjectCursorOut()
	in.ReadInput(&snap)
	in.ReadInput(&snap)
	if snap.CursorX != offscreen {
		t.Errorf("cursor should be parked off screen, got %v", snap.CursorX)
	}
}

func TestInjectedInput_Touches(t *testing.T) {
	in := NewInjectedInput()
	in.InjectTouchPress(1, 5, 5)
	in.InjectTouchPress(2, 8, 8)
	in.InjectTouchMove(1, 6, 7)
	in.InjectTouchRelease(2)
	in.InjectTouchRelease(9) // unknown id is ignored

	var snap InputSnapshot
	want := []int{1, 2, 2, 1, 1}
	for i, n := range want {
		in.ReadInput(&snap)
		if len(snap.Touches) != n {
			t.Fatalf("frame %d: %d touches, want %d", i+1, len(snap.Touches), n)
		}
	}
	if got := snap.Touches[0]; got.ID != 1 || got.PageX != 6 || got.PageY != 7 {
		t.Errorf("remaining touch = %+v", got)
	}
}

func TestInjectTouchDrag(t *testing.T) {
	in := NewInjectedInput()
	in.InjectTouchDrag(1, 0, 0, 40, 80, 5)

	// press + 4 moves + release
	if in.Pending() != 6 {
		t.Fatalf("expected 6 queued changes, got %d", in.Pending())
	}

	var snap InputSnapshot
	wantX := []float64{0, 10, 20, 30, 40}
	for i, x := range wantX {
		in.ReadInput(&snap)
		if len(snap.Touches) != 1 || snap.Touches[0].PageX != x {
			t.Fatalf("frame %d: touches = %+v, want x=%v", i+1, snap.Touches, x)
		}
	}
	if snap.Touches[0].PageY != 80 {
		t.Errorf("final y = %v, want 80", snap.Touches[0].PageY)
	}
	in.ReadInput(&snap)
	if len(snap.Touches) != 0 {
		t.Errorf("touch should be released, got %+v", snap.Touches)
	}
}

func TestInjectTouchDrag_MinFrames(t *testing.T) {
	in := NewInjectedInput()
	in.InjectTouchDrag(1, 0, 0, 10, 10, 0)
	// Clamped to 2: press + 1 move + release.
	if in.Pending() != 3 {
		t.Errorf("expected 3 queued changes, got %d", in.Pending())
	}
}
