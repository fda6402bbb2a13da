package swraster

// BackfaceCullWinding selects which camera-space vertex winding is
// considered front-facing.
type BackfaceCullWinding int

const (
	WindingClockwise BackfaceCullWinding = iota
	WindingAntiClockwise
)

// IsBackfacing reports whether the camera-space triangle v1, v2, v3 faces
// away from the viewer under winding. The normal n = (v3-v1) x (v3-v2) is
// used for clockwise-wound meshes (swapped for anti-clockwise), and the
// view vector is v1 itself - the pinhole camera sits at the origin of
// camera space, so the vector from the eye to any vertex on the triangle
// serves as the view direction. The triangle is backfacing when
// n . v1 >= 0.
func IsBackfacing(v1, v2, v3 Vector3, winding BackfaceCullWinding) bool {
	var n Vector3
	if winding == WindingClockwise {
		n = v3.Sub(v1).Cross(v3.Sub(v2))
	} else {
		n = v3.Sub(v2).Cross(v3.Sub(v1))
	}
	return n.Dot(v1) >= 0
}
