package swraster

import "math"

// fixedShift is the fractional bit count of the 20.12 fixed-point format
// used for span interpolants (colour channels and UV) while walking
// scanlines - integer arithmetic on the hot per-pixel loop avoids floating
// point division inside the span.
const fixedShift = 12

func toFixed(f float32) int64 {
	return int64(f * float32(int64(1)<<fixedShift))
}

func fromFixed(f int64) float32 {
	return float32(f) / float32(int64(1)<<fixedShift)
}

// scanVertex is a screen-space vertex ready for the edge walker: float X
// and Y (sub-pixel accurate), depth, colour and UV.
type scanVertex struct {
	x, y   float32
	z      float32
	colour Colour128
	u, v   float32
}

func toScanVertex(v Vertex) scanVertex {
	return scanVertex{x: v.X, y: v.Y, z: v.Z, colour: ColourFromPacked(v.Colour), u: v.U, v: v.V}
}

// sortByY selection-sorts three vertices into ascending Y (top, middle,
// bottom), the same small fixed-size sort the source engine uses instead
// of a general-purpose sort for a 3-element list.
func sortByY(v [3]scanVertex) (top, middle, bottom scanVertex) {
	idx := [3]int{0, 1, 2}
	for i := 0; i < 2; i++ {
		min := i
		for j := i + 1; j < 3; j++ {
			if v[idx[j]].y < v[idx[min]].y {
				min = j
			}
		}
		idx[i], idx[min] = idx[min], idx[i]
	}
	return v[idx[0]], v[idx[1]], v[idx[2]]
}

// Rasterizer rasterizes clipped, screen-space triangles into a bound
// PixelBuffer and optional DepthBuffer using edge-walking scanline fill.
type Rasterizer struct {
	pixels  *PixelBuffer
	depth   *DepthBuffer
	texture *Texture
}

func NewRasterizer(pixels *PixelBuffer, depth *DepthBuffer) *Rasterizer {
	return &Rasterizer{pixels: pixels, depth: depth}
}

func (r *Rasterizer) SetTexture(t *Texture) { r.texture = t }

// edgeWalk is one interpolated edge being stepped one scanline at a time.
type edgeWalk struct {
	x, xStep         float32
	colour, colStep  Colour128
	u, uStep         float32
	v, vStep         float32
	z, zStep         float32
}

func newEdgeWalk(from, to scanVertex, rows float32) edgeWalk {
	if rows <= 0 {
		rows = 1
	}
	return edgeWalk{
		x: from.x, xStep: (to.x - from.x) / rows,
		colour: from.colour, colStep: Colour128{
			R: (to.colour.R - from.colour.R) / rows,
			G: (to.colour.G - from.colour.G) / rows,
			B: (to.colour.B - from.colour.B) / rows,
			A: (to.colour.A - from.colour.A) / rows,
		},
		u: from.u, uStep: (to.u - from.u) / rows,
		v: from.v, vStep: (to.v - from.v) / rows,
		z: from.z, zStep: (to.z - from.z) / rows,
	}
}

func (e *edgeWalk) step() {
	e.x += e.xStep
	e.colour = e.colour.Add(e.colStep)
	e.u += e.uStep
	e.v += e.vStep
	e.z += e.zStep
}

// RasterizeTriangle fills a single clipped, screen-space triangle using
// Gouraud-interpolated colour and, when textured is true, affine texture
// mapping modulated by the same colour. a, b, c must already be in screen
// space (post-projection, post-clip).
func (r *Rasterizer) RasterizeTriangle(a, b, c Vertex, textured bool) {
	verts := [3]scanVertex{toScanVertex(a), toScanVertex(b), toScanVertex(c)}
	top, middle, bottom := sortByY(verts)

	totalHeight := bottom.y - top.y
	if totalHeight <= 0 {
		return
	}

	minor := bottom.x > middle.x

	topToBottom := newEdgeWalk(top, bottom, totalHeight)
	topToMiddle := newEdgeWalk(top, middle, middle.y-top.y)
	middleToBottom := newEdgeWalk(middle, bottom, bottom.y-middle.y)

	r.walkHalf(top.y, middle.y, &topToBottom, &topToMiddle, minor, textured)
	advance(&topToBottom, middle.y-top.y)
	r.walkHalf(middle.y, bottom.y, &topToBottom, &middleToBottom, minor, textured)
}

// walkHalf advances the long top-to-bottom edge (long) and the short edge
// for this half of the triangle (short) in lockstep, one row at a time,
// drawing a horizontal span between them on every integer scanline.
func (r *Rasterizer) walkHalf(yStart, yEnd float32, long, short *edgeWalk, minor, textured bool) {
	startRow := int(math.Ceil(float64(yStart)))
	endRow := int(math.Ceil(float64(yEnd)))
	if startRow >= endRow {
		return
	}

	// Sub-pixel row correction: the first scanline is not at yStart
	// exactly, so pre-advance the interpolants by the fractional offset.
	preStep := float32(startRow) - yStart
	longAt := *long
	shortAt := *short
	advance(&longAt, preStep)
	advance(&shortAt, preStep)

	for y := startRow; y < endRow; y++ {
		left, right := &longAt, &shortAt
		if minor {
			left, right = &shortAt, &longAt
		}
		r.drawSpan(y, *left, *right, textured)
		longAt.step()
		shortAt.step()
	}
}

func advance(e *edgeWalk, rows float32) {
	e.x += e.xStep * rows
	e.colour = e.colour.Add(Colour128{
		R: e.colStep.R * rows, G: e.colStep.G * rows, B: e.colStep.B * rows, A: e.colStep.A * rows,
	})
	e.u += e.uStep * rows
	e.v += e.vStep * rows
	e.z += e.zStep * rows
}

// drawSpan fills one horizontal scanline between left.x and right.x using
// the top-left fill convention: the span starts at ceil(xStart) and ends
// just before ceil(xEnd), so adjoining triangles never double-draw or gap
// a shared edge.
func (r *Rasterizer) drawSpan(y int, left, right edgeWalk, textured bool) {
	if y < 0 || y >= r.pixels.Height() {
		return
	}
	xStart := left.x
	xEnd := right.x
	if xEnd <= xStart {
		return
	}

	width := xEnd - xStart
	colStepX := Colour128{
		R: (right.colour.R - left.colour.R) / width,
		G: (right.colour.G - left.colour.G) / width,
		B: (right.colour.B - left.colour.B) / width,
		A: (right.colour.A - left.colour.A) / width,
	}
	uStepX := (right.u - left.u) / width
	vStepX := (right.v - left.v) / width
	zStepX := (right.z - left.z) / width

	startX := int(math.Ceil(float64(xStart)))
	endX := int(math.Ceil(float64(xEnd)))
	if startX < 0 {
		startX = 0
	}
	if endX > r.pixels.Width() {
		endX = r.pixels.Width()
	}
	if startX >= endX {
		return
	}

	preStep := float32(startX) - xStart
	colFixed := colourToFixed(left.colour.Add(Colour128{
		R: colStepX.R * preStep, G: colStepX.G * preStep, B: colStepX.B * preStep, A: colStepX.A * preStep,
	}))
	u := toFixed(left.u + uStepX*preStep)
	v := toFixed(left.v + vStepX*preStep)
	z := left.z + zStepX*preStep

	colStepFixed := colourToFixed(colStepX)
	uStep := toFixed(uStepX)
	vStep := toFixed(vStepX)

	for x := startX; x < endX; x++ {
		depthPass := true
		zi := int16(z * 32767)
		if r.depth != nil {
			depthPass = r.depth.TestAndSet(x, y, zi)
		}
		if depthPass {
			col := fixedToColour(colFixed)
			if textured && r.texture != nil {
				sample := r.texture.Sample(fromFixed(u), fromFixed(v))
				col = col.Mul(ColourFromPacked(sample))
			}
			r.pixels.Set(x, y, col.ToPacked())
		}
		colFixed = addFixedColour(colFixed, colStepFixed)
		u += uStep
		v += vStep
		z += zStepX
	}
}

type fixedColour struct{ r, g, b, a int64 }

func colourToFixed(c Colour128) fixedColour {
	return fixedColour{toFixed(c.R), toFixed(c.G), toFixed(c.B), toFixed(c.A)}
}

func fixedToColour(f fixedColour) Colour128 {
	return Colour128{fromFixed(f.r), fromFixed(f.g), fromFixed(f.b), fromFixed(f.a)}
}

func addFixedColour(a, b fixedColour) fixedColour {
	return fixedColour{a.r + b.r, a.g + b.g, a.b + b.b, a.a + b.a}
}

// PlotLine draws a Gouraud-shaded line between a and b using a classic
// Bresenham walk, used by DrawWireFrame and DrawNormals.
func (r *Rasterizer) PlotLine(a, b Vertex) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)
	colA, colB := ColourFromPacked(a.Colour), ColourFromPacked(b.Colour)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	steps := dx
	if -dy > steps {
		steps = -dy
	}
	if steps == 0 {
		steps = 1
	}

	x, y := x0, y0
	i := 0
	for {
		t := float32(i) / float32(steps)
		col := LerpColour(colA, colB, t)
		r.pixels.Set(x, y, col.ToPacked())
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		i++
	}
}

// DrawWireFrame draws the three screen-space edges of a clipped triangle.
func (r *Rasterizer) DrawWireFrame(a, b, c Vertex) {
	r.PlotLine(a, b)
	r.PlotLine(b, c)
	r.PlotLine(c, a)
}

// DrawNormals draws a short segment from each vertex along its normal,
// scaled by length, in the vertex's own colour - a debugging aid.
func (r *Rasterizer) DrawNormals(verts []Vertex, length float32) {
	for _, v := range verts {
		tip := v
		tip.X += v.NX * length
		tip.Y += v.NY * length
		r.PlotLine(v, tip)
	}
}

// DrawTexture2DOptions configures a screen-space texture blit.
type DrawTexture2DOptions struct {
	Source     Rect // zero value means "whole texture"
	ChromaKey  uint32
	UseChroma  bool
}

// DrawTexture2D blits tex into the pixel buffer at (x, y), unscaled,
// skipping texels equal to opts.ChromaKey when opts.UseChroma is set.
func (r *Rasterizer) DrawTexture2D(tex Texture, x, y int, opts DrawTexture2DOptions) {
	src := opts.Source
	if src.W == 0 || src.H == 0 {
		src = Rect{X: 0, Y: 0, W: tex.Width, H: tex.Height}
	}
	for row := 0; row < src.H; row++ {
		sy := src.Y + row
		if sy < 0 || sy >= tex.Height {
			continue
		}
		for col := 0; col < src.W; col++ {
			sx := src.X + col
			if sx < 0 || sx >= tex.Width {
				continue
			}
			px := tex.Pixels[sy*tex.Width+sx]
			if opts.UseChroma && px == opts.ChromaKey {
				continue
			}
			r.pixels.Set(x+col, y+row, px)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
