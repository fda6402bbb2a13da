package swraster

// Colour128 is a floating-point RGBA colour with channels conventionally
// in [0, 255], used wherever colour needs to be accumulated or interpolated
// before being packed back into a vertex's byte colour. Keeping this
// distinct from the packed form mirrors how the lighting evaluator and the
// clipper's edge interpolation both need headroom above a single byte.
type Colour128 struct {
	R, G, B, A float32
}

func (c Colour128) Add(o Colour128) Colour128 {
	return Colour128{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c Colour128) Mul(o Colour128) Colour128 {
	return Colour128{
		R: c.R * o.R / 255,
		G: c.G * o.G / 255,
		B: c.B * o.B / 255,
		A: c.A * o.A / 255,
	}
}

func (c Colour128) Scale(s float32) Colour128 {
	return Colour128{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Clamp clips every channel into [0, 255].
func (c Colour128) Clamp() Colour128 {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return Colour128{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

func LerpColour(a, b Colour128, t float32) Colour128 {
	return Colour128{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// ToPacked rounds and clamps c into a packed 0xAABBGGRR-order uint32, the
// in-memory layout the pixel buffer stores.
func (c Colour128) ToPacked() uint32 {
	cl := c.Clamp()
	r := uint32(cl.R + 0.5)
	g := uint32(cl.G + 0.5)
	b := uint32(cl.B + 0.5)
	a := uint32(cl.A + 0.5)
	return r | g<<8 | b<<16 | a<<24
}

// ColourFromPacked unpacks a pixel-buffer colour back into floating point.
func ColourFromPacked(p uint32) Colour128 {
	return Colour128{
		R: float32(p & 0xFF),
		G: float32((p >> 8) & 0xFF),
		B: float32((p >> 16) & 0xFF),
		A: float32((p >> 24) & 0xFF),
	}
}
