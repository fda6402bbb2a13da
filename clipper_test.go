package swraster

import "testing"

func mkVertex(x, y float32) Vertex {
	return Vertex{X: x, Y: y, Colour: 0xFFFFFFFF}
}

func TestClipTriangleFullyInside(t *testing.T) {
	c := NewTriangleClipper(100, 100)
	a, b, cc := mkVertex(10, 10), mkVertex(50, 10), mkVertex(30, 50)
	sa := Vector4{X: a.X, Y: a.Y}
	sb := Vector4{X: b.X, Y: b.Y}
	sc := Vector4{X: cc.X, Y: cc.Y}
	tris := c.ClipTriangle(a, b, cc, sa, sb, sc)
	if len(tris) != 1 {
		t.Fatalf("ClipTriangle() fully-inside triangle produced %d triangles, want 1", len(tris))
	}
}

func TestClipTriangleFullyOutsideRejected(t *testing.T) {
	c := NewTriangleClipper(100, 100)
	a, b, cc := mkVertex(-50, -50), mkVertex(-40, -50), mkVertex(-45, -10)
	sa := Vector4{X: a.X, Y: a.Y}
	sb := Vector4{X: b.X, Y: b.Y}
	sc := Vector4{X: cc.X, Y: cc.Y}
	tris := c.ClipTriangle(a, b, cc, sa, sb, sc)
	if len(tris) != 0 {
		t.Fatalf("ClipTriangle() of a triangle entirely left of the viewport produced %d triangles, want 0", len(tris))
	}
}

func TestClipTrianglePartialProducesOutput(t *testing.T) {
	c := NewTriangleClipper(100, 100)
	a, b, cc := mkVertex(-20, 50), mkVertex(50, -20), mkVertex(50, 50)
	sa := Vector4{X: a.X, Y: a.Y}
	sb := Vector4{X: b.X, Y: b.Y}
	sc := Vector4{X: cc.X, Y: cc.Y}
	tris := c.ClipTriangle(a, b, cc, sa, sb, sc)
	if len(tris) == 0 {
		t.Fatalf("ClipTriangle() of a partially-overlapping triangle produced 0 triangles, want at least 1")
	}
	for _, tri := range tris {
		for _, v := range tri {
			if v.X < -0.01 || v.Y < -0.01 {
				t.Fatalf("clipped vertex %v falls outside the viewport", v)
			}
		}
	}
}

// TestClipTriangleCornerRegionPicksOneSide exercises a vertex that
// violates both the left and top edges at once (outcode 0x09). The
// dominant-axis heuristic must resolve it against a single side rather
// than clipping against both in sequence the way generic Sutherland-
// Hodgman would: here dx == dy along the corner's edge into the interior,
// which edgeForCode treats as horizontal-dominant and resolves against
// the top edge alone, landing exactly on the viewport's own corner.
func TestClipTriangleCornerRegionPicksOneSide(t *testing.T) {
	c := NewTriangleClipper(10, 10)
	a := mkVertex(-5, -5)
	b := mkVertex(5, 5)
	cc := mkVertex(-5, 5)
	sa := Vector4{X: a.X, Y: a.Y}
	sb := Vector4{X: b.X, Y: b.Y}
	sc := Vector4{X: cc.X, Y: cc.Y}

	tris := c.ClipTriangle(a, b, cc, sa, sb, sc)
	if len(tris) != 1 {
		t.Fatalf("ClipTriangle() = %d triangles, want 1", len(tris))
	}
	want := [3][2]float32{{0, 0}, {5, 5}, {0, 5}}
	for i, v := range tris[0] {
		if !almostEqual(v.X, want[i][0], 0.001) || !almostEqual(v.Y, want[i][1], 0.001) {
			t.Fatalf("vertex %d = (%v,%v), want (%v,%v)", i, v.X, v.Y, want[i][0], want[i][1])
		}
	}
}

func TestClipTriangleInterpolatesColourAtCutEdge(t *testing.T) {
	c := NewTriangleClipper(100, 100)
	a := Vertex{X: -50, Y: 50, Colour: Colour128{R: 255, A: 255}.ToPacked()}
	b := Vertex{X: 50, Y: 50, Colour: Colour128{B: 255, A: 255}.ToPacked()}
	cc := Vertex{X: 0, Y: -50, Colour: Colour128{G: 255, A: 255}.ToPacked()}
	sa := Vector4{X: a.X, Y: a.Y}
	sb := Vector4{X: b.X, Y: b.Y}
	sc := Vector4{X: cc.X, Y: cc.Y}
	tris := c.ClipTriangle(a, b, cc, sa, sb, sc)
	if len(tris) == 0 {
		t.Fatalf("expected clipped output")
	}
	// every produced vertex colour should be a valid packed colour, not a
	// zero value left over from an uninitialised interpolation
	for _, tri := range tris {
		for _, v := range tri {
			if v.Colour == 0 {
				t.Fatalf("clipped vertex has zero colour, interpolation likely missed")
			}
		}
	}
}
