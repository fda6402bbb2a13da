package swraster

import "testing"

func TestColourPackRoundTrip(t *testing.T) {
	c := Colour128{R: 10, G: 20, B: 30, A: 255}
	p := c.ToPacked()
	back := ColourFromPacked(p)
	if back != c {
		t.Fatalf("round trip = %v, want %v", back, c)
	}
}

func TestColourClamp(t *testing.T) {
	c := Colour128{R: -10, G: 300, B: 128, A: 0}
	got := c.Clamp()
	want := Colour128{R: 0, G: 255, B: 128, A: 0}
	if got != want {
		t.Fatalf("Clamp() = %v, want %v", got, want)
	}
}

func TestColourMul(t *testing.T) {
	c := Colour128{R: 255, G: 255, B: 255, A: 255}
	half := Colour128{R: 128, G: 128, B: 128, A: 255}
	got := c.Mul(half)
	if got.R < 127 || got.R > 129 {
		t.Fatalf("Mul() R = %v, want ~128", got.R)
	}
}

func TestLerpColour(t *testing.T) {
	a := Colour128{R: 0}
	b := Colour128{R: 255}
	got := LerpColour(a, b, 0.5)
	if got.R < 127 || got.R > 128 {
		t.Fatalf("LerpColour() R = %v, want ~127.5", got.R)
	}
}
