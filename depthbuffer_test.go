package swraster

import "testing"

func TestDepthBufferNearerWins(t *testing.T) {
	db := NewDepthBuffer(4, 4)
	if !db.TestAndSet(1, 1, 100) {
		t.Fatalf("first write to cleared buffer should pass")
	}
	if db.TestAndSet(1, 1, 200) {
		t.Fatalf("farther fragment should not pass CompareLess")
	}
	if !db.TestAndSet(1, 1, 50) {
		t.Fatalf("nearer fragment should pass CompareLess")
	}
	if got := db.Get(1, 1); got != 50 {
		t.Fatalf("Get(1,1) = %v, want 50", got)
	}
}

func TestDepthBufferClearChunking(t *testing.T) {
	db := NewDepthBuffer(37, 29)
	db.Clear(5)
	for y := 0; y < 29; y++ {
		for x := 0; x < 37; x++ {
			if got := db.Get(x, y); got != 5 {
				t.Fatalf("Get(%d,%d) = %v, want 5", x, y, got)
			}
		}
	}
}

func TestDepthBufferOutOfBounds(t *testing.T) {
	db := NewDepthBuffer(2, 2)
	if db.Test(-1, 0, 0) {
		t.Fatalf("Test() out of bounds should fail")
	}
	if db.TestAndSet(5, 5, 0) {
		t.Fatalf("TestAndSet() out of bounds should fail")
	}
}

func TestDepthBufferAlways(t *testing.T) {
	db := NewDepthBuffer(1, 1)
	db.SetCompareFunc(CompareAlways)
	if !db.TestAndSet(0, 0, 32000) {
		t.Fatalf("CompareAlways should always pass")
	}
	if !db.TestAndSet(0, 0, -32000) {
		t.Fatalf("CompareAlways should always pass regardless of stored value")
	}
}
