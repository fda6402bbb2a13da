package swraster

import "math"

// Projection holds the parameters derived once at configuration time and
// reused by Project for every vertex of every frame.
type Projection struct {
	Near, Far      float32
	FOV            float32 // degrees
	ViewportW      int
	ViewportH      int
	focalX, focalY float32
	halfVPW        float32
	halfVPH        float32
}

// NewProjection derives the focal lengths and viewport half-extents for a
// width x height target and vertical field of view fov, in degrees.
//
// focalY scales cotFov (the half-angle cotangent) by halfH so the result is
// already in pixels, not a unit NDC slope; focalX is derived from focalY by
// the height/width aspect ratio rather than reapplying the half-angle
// cotangent a second time, which would squash non-square viewports along X.
func NewProjection(width, height int, fov, near, far float32) Projection {
	halfW := float32(width) / 2
	halfH := float32(height) / 2
	cotFov := float32(1 / math.Tan(float64(degToRad(fov))/2))
	focalY := halfH * cotFov
	focalX := focalY * (float32(height) / float32(width))
	return Projection{
		Near: near, Far: far, FOV: fov,
		ViewportW: width, ViewportH: height,
		focalX: focalX, focalY: focalY,
		halfVPW: halfW,
		halfVPH: halfH,
	}
}

// Project maps a camera-space point into screen space: x, y in pixel
// coordinates with (0,0) at the top-left, z as a normalised depth in
// [0, 1] suitable for packing into the depth buffer.
func (p Projection) Project(v Vector3) (Vector4, bool) {
	if v.Z < p.Near {
		return Vector4{}, false
	}
	q := p.Far / (p.Far - p.Near)
	x := p.focalX * v.X
	y := p.focalY * -v.Y
	z := v.Z*q - q*p.Near
	w := v.Z

	x /= w
	y /= w
	z /= w

	x += p.halfVPW
	y += p.halfVPH

	return Vector4{X: x, Y: y, Z: z, W: w}, true
}
