package swraster

import "testing"

func TestProjectionBehindNearFails(t *testing.T) {
	p := NewProjection(640, 480, 60, 0.1, 100)
	if _, ok := p.Project(Vector3{Z: 0.05}); ok {
		t.Fatalf("Project() of a point behind the near plane should fail")
	}
}

func TestProjectionCentersOrigin(t *testing.T) {
	p := NewProjection(640, 480, 60, 0.1, 100)
	s, ok := p.Project(Vector3{X: 0, Y: 0, Z: 10})
	if !ok {
		t.Fatalf("Project() of a valid point failed")
	}
	if !almostEqual(s.X, 320, 0.5) || !almostEqual(s.Y, 240, 0.5) {
		t.Fatalf("Project() of the view-axis point = (%v, %v), want viewport center", s.X, s.Y)
	}
}

// TestProjectionNonSquareSymmetry checks the focal-X derivation does not
// double-apply the aspect correction: a symmetric pair of points at +/-X
// the same camera-space distance from the view axis should land
// symmetrically around the viewport center in a non-square viewport, at
// the offset focalX = halfH*cot(fov/2)*(H/W) = 300*1.7320508*0.75 gives
// for X=1, Z=10: 38.97 pixels.
func TestProjectionNonSquareSymmetry(t *testing.T) {
	p := NewProjection(800, 600, 60, 0.1, 100)
	left, _ := p.Project(Vector3{X: -1, Z: 10})
	right, _ := p.Project(Vector3{X: 1, Z: 10})
	center := float32(400)
	dLeft := center - left.X
	dRight := right.X - center
	if !almostEqual(dLeft, dRight, 0.01) {
		t.Fatalf("projection not symmetric around viewport center: left delta %v, right delta %v", dLeft, dRight)
	}
	if !almostEqual(dRight, 38.97, 0.01) {
		t.Fatalf("right delta = %v, want 38.97 (focalX = focalY * H/W)", dRight)
	}
}

func TestProjectionYInverted(t *testing.T) {
	p := NewProjection(640, 480, 60, 0.1, 100)
	up, _ := p.Project(Vector3{Y: 1, Z: 10})
	down, _ := p.Project(Vector3{Y: -1, Z: 10})
	if !(up.Y < 240 && down.Y > 240) {
		t.Fatalf("Y should invert: camera-space up should project above center, got up=%v down=%v", up.Y, down.Y)
	}
}
