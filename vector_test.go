package swraster

import "testing"

func TestVector3Normalise(t *testing.T) {
	v := Vector3{X: 3, Y: 0, Z: 4}
	n := v.Normalise()
	if got := n.Magnitude(); got < 0.999 || got > 1.001 {
		t.Fatalf("Normalise() magnitude = %v, want ~1", got)
	}
}

func TestVector3NormaliseZero(t *testing.T) {
	var zero Vector3
	if n := zero.Normalise(); n != zero {
		t.Fatalf("Normalise() of zero vector = %v, want zero", n)
	}
}

func TestVector3Cross(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}
	got := x.Cross(y)
	want := Vector3{Z: 1}
	if got != want {
		t.Fatalf("Cross() = %v, want %v", got, want)
	}
}

func TestVector2Perp(t *testing.T) {
	v := Vector2{X: 1, Y: 2}
	got := v.Perp()
	want := Vector2{X: 2, Y: -1}
	if got != want {
		t.Fatalf("Perp() = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, tt, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.tt); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.tt, got, c.want)
		}
	}
}
