package swraster

// regionCode is a Cohen-Sutherland style 4-bit outcode against the screen
// rectangle. Bit assignment follows the source engine literally: LEFT is
// bit 0, RIGHT bit 1, BOTTOM bit 2, TOP bit 3.
type regionCode uint8

const (
	regionInner  regionCode = 0x00
	regionLeft   regionCode = 0x01
	regionRight  regionCode = 0x02
	regionBottom regionCode = 0x04
	regionTop    regionCode = 0x08
)

// TriangleClipper clips screen-space triangles against a rectangular
// viewport of width x height pixels.
type TriangleClipper struct {
	width, height int
}

func NewTriangleClipper(width, height int) *TriangleClipper {
	return &TriangleClipper{width: width, height: height}
}

func (c *TriangleClipper) classify(x, y float32) regionCode {
	var code regionCode
	if x < 0 {
		code |= regionLeft
	} else if x >= float32(c.width) {
		code |= regionRight
	}
	if y < 0 {
		code |= regionTop
	} else if y >= float32(c.height) {
		code |= regionBottom
	}
	return code
}

// clipVertex is the clipper's working vertex: screen-space position plus
// the attributes that must be interpolated across a cut edge.
type clipVertex struct {
	x, y, z float32
	colour  Colour128
	u, v    float32
}

func fromVertex(v Vertex, screen Vector4) clipVertex {
	return clipVertex{x: screen.X, y: screen.Y, z: screen.Z, colour: ColourFromPacked(v.Colour), u: v.U, v: v.V}
}

func (cv clipVertex) toVertex() Vertex {
	return Vertex{X: cv.x, Y: cv.y, Z: cv.z, Colour: cv.colour.ToPacked(), U: cv.u, V: cv.v}
}

func lerpClipVertex(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		x:      Lerp(a.x, b.x, t),
		y:      Lerp(a.y, b.y, t),
		z:      Lerp(a.z, b.z, t),
		colour: LerpColour(a.colour, b.colour, t),
		u:      Lerp(a.u, b.u, t),
		v:      Lerp(a.v, b.v, t),
	}
}

type clipPlane int

const (
	planeLeft clipPlane = iota
	planeRight
	planeTop
	planeBottom
)

// edgeForCode picks the single screen side to clip a→b against, given the
// outcode of the endpoint that lies outside. A single-bit code names its
// side directly. A corner code (two bits set) is resolved the way the
// source engine's FindBestEdgeIndex does it: by the edge's dominant axis,
// not by clipping against both sides in turn - |dx/dy| > 1 means the edge
// is more vertical than horizontal, so the left/right side is the one
// that actually bounds it; otherwise the top/bottom side is used. This is
// a deliberate, known limitation carried over from the source algorithm:
// a corner-region vertex is only ever cut against one of its two
// violated sides.
func edgeForCode(code regionCode, dx, dy float32) clipPlane {
	switch code {
	case regionLeft:
		return planeLeft
	case regionRight:
		return planeRight
	case regionTop:
		return planeTop
	case regionBottom:
		return planeBottom
	}
	verticalDominant := dy == 0
	if dy != 0 {
		slope := dx / dy
		if slope < 0 {
			slope = -slope
		}
		verticalDominant = slope > 1
	}
	if verticalDominant {
		if code&regionLeft != 0 {
			return planeLeft
		}
		return planeRight
	}
	if code&regionTop != 0 {
		return planeTop
	}
	return planeBottom
}

// intersect finds where the edge a->b crosses plane p, via the same
// parametric line/line test the source engine uses: build the edge as
// P1 + t*D1, the screen boundary as P2 + s*D2, solve with the perpendicular
// cross-product trick so only a single division is needed.
func (c *TriangleClipper) intersect(p clipPlane, a, b clipVertex) clipVertex {
	d := Vector2{X: b.x - a.x, Y: b.y - a.y}
	var p2, d2 Vector2
	switch p {
	case planeLeft:
		p2, d2 = Vector2{X: 0, Y: 0}, Vector2{X: 0, Y: float32(c.height)}
	case planeRight:
		p2, d2 = Vector2{X: float32(c.width), Y: 0}, Vector2{X: 0, Y: float32(c.height)}
	case planeTop:
		p2, d2 = Vector2{X: 0, Y: 0}, Vector2{X: float32(c.width), Y: 0}
	case planeBottom:
		p2, d2 = Vector2{X: 0, Y: float32(c.height)}, Vector2{X: float32(c.width), Y: 0}
	}
	p1 := Vector2{X: a.x, Y: a.y}
	perpD2 := d2.Perp()
	denom := perpD2.Dot(d)
	var t float32
	if denom != 0 {
		t = perpD2.Dot(p2.Sub(p1)) / denom
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lerpClipVertex(a, b, t)
}

// clipEdge processes one directed triangle edge start->end and appends
// its contribution to the output polygon, per the source algorithm: an
// edge fully inside contributes just its start vertex (the next edge's
// start picks up where this one's end left off); an edge with both
// endpoints sharing an outside side is dropped entirely; otherwise the
// start contributes either itself (if inside) or its intersection against
// the screen side named by its own outcode, and if the end is outside it
// additionally contributes its own intersection against the side named by
// its outcode.
func (c *TriangleClipper) clipEdge(out []clipVertex, start, end clipVertex, codeStart, codeEnd regionCode) []clipVertex {
	if codeStart == regionInner && codeEnd == regionInner {
		return append(out, start)
	}
	if codeStart&codeEnd != 0 {
		return out
	}
	dx, dy := end.x-start.x, end.y-start.y
	if codeStart == regionInner {
		out = append(out, start)
	} else {
		out = append(out, c.intersect(edgeForCode(codeStart, dx, dy), start, end))
	}
	if codeEnd != regionInner {
		out = append(out, c.intersect(edgeForCode(codeEnd, dx, dy), start, end))
	}
	return out
}

// ClipTriangle clips the screen-space triangle (with interpolated
// attributes) against the viewport rectangle, returning 0 to 3 output
// triangles via Vertex fan triangulation. A triangle fully outside any
// single screen edge is rejected with no intersection work; a triangle
// fully inside is returned unchanged.
func (c *TriangleClipper) ClipTriangle(a, b, cc Vertex, sa, sb, sc Vector4) [][3]Vertex {
	ca, cb, ccc := c.classify(sa.X, sa.Y), c.classify(sb.X, sb.Y), c.classify(sc.X, sc.Y)
	if ca&cb&ccc != 0 {
		return nil
	}
	if ca|cb|ccc == regionInner {
		return [][3]Vertex{{a, b, cc}}
	}

	verts := [3]clipVertex{fromVertex(a, sa), fromVertex(b, sb), fromVertex(cc, sc)}
	codes := [3]regionCode{ca, cb, ccc}

	out := make([]clipVertex, 0, 6)
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		out = c.clipEdge(out, verts[i], verts[j], codes[i], codes[j])
	}
	if len(out) < 3 {
		return nil
	}

	tris := make([][3]Vertex, 0, 3)
	for i := 1; i+1 < len(out) && len(tris) < 3; i++ {
		tris = append(tris, [3]Vertex{out[0].toVertex(), out[i].toVertex(), out[i+1].toVertex()})
	}
	return tris
}
