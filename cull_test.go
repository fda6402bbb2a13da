package swraster

import "testing"

func TestIsBackfacingClockwise(t *testing.T) {
	// This winding, viewed from the origin looking down +Z, is front-facing
	// under WindingClockwise; reversing v2/v3 flips it to backfacing.
	v1 := Vector3{X: 0, Y: 0, Z: 5}
	v2 := Vector3{X: 0, Y: 1, Z: 5}
	v3 := Vector3{X: 1, Y: 0, Z: 5}
	if IsBackfacing(v1, v2, v3, WindingClockwise) {
		t.Fatalf("front-facing clockwise triangle flagged backfacing")
	}
	if !IsBackfacing(v1, v3, v2, WindingClockwise) {
		t.Fatalf("reversed winding of the same triangle not flagged backfacing")
	}
}

func TestIsBackfacingAntiClockwise(t *testing.T) {
	v1 := Vector3{X: 0, Y: 0, Z: 5}
	v2 := Vector3{X: 0, Y: 1, Z: 5}
	v3 := Vector3{X: 1, Y: 0, Z: 5}
	if !IsBackfacing(v1, v2, v3, WindingAntiClockwise) {
		t.Fatalf("triangle front-facing under WindingClockwise should be backfacing under WindingAntiClockwise")
	}
}
