package swraster

import "testing"

func TestHeadlessInputRightMouseHitSymmetric(t *testing.T) {
	h := NewHeadlessInput()
	h.SetRightMouse(true)
	if !h.IsRightMouseHit() {
		t.Fatalf("right mouse press should set the hit latch")
	}
	if !h.IsRightMouseDown() {
		t.Fatalf("right mouse press should set the down latch")
	}
	h.Poll()
	if h.IsRightMouseHit() {
		t.Fatalf("Poll() should clear the hit latch")
	}
	if !h.IsRightMouseDown() {
		t.Fatalf("Poll() should not clear the down latch while the button is held")
	}
}

func TestHeadlessInputKeyLatches(t *testing.T) {
	h := NewHeadlessInput()
	h.SetKeyDown(42, true)
	if !h.IsKeyDown(42) || !h.IsKeyHit(42) {
		t.Fatalf("key press should set both down and hit")
	}
	h.Poll()
	if h.IsKeyHit(42) {
		t.Fatalf("Poll() should clear the hit latch")
	}
	if !h.IsKeyDown(42) {
		t.Fatalf("Poll() should not clear the down latch")
	}
	h.SetKeyDown(42, false)
	if !h.IsKeyUp(42) || h.IsKeyDown(42) {
		t.Fatalf("key release should set up and clear down")
	}
}
