package swraster

import "math"

// Matrix4 is a row-major 4x4 affine transform. Index [row][col].
type Matrix4 [4][4]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Transform applies m to a homogeneous point with w=1.
func (m Matrix4) Transform(v Vector3) Vector4 {
	return Vector4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3],
	}
}

// TransformDirection applies only the 3x3 rotation/scale part of m,
// ignoring translation - used for normals.
func (m Matrix4) TransformDirection(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// IsOrthonormal reports whether m's upper-left 3x3 block is a rotation
// (orthonormal) matrix, within tolerance - the case where Inverse can take
// the cheap transpose path instead of full cofactor expansion.
func (m Matrix4) IsOrthonormal() bool {
	const eps = 1e-4
	rows := [3]Vector3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
	for i := 0; i < 3; i++ {
		if mag := rows[i].Dot(rows[i]); mag < 1-eps || mag > 1+eps {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if d := rows[i].Dot(rows[j]); d < -eps || d > eps {
				return false
			}
		}
	}
	return true
}

// Inverse returns the inverse of an affine transform matrix. When the
// rotation block is orthonormal, the cheap transpose-plus-translation-flip
// path is used; otherwise a full cofactor expansion computes the general
// inverse.
func (m Matrix4) Inverse() Matrix4 {
	if m.IsOrthonormal() {
		return m.orthonormalInverse()
	}
	return m.cofactorInverse()
}

func (m Matrix4) orthonormalInverse() Matrix4 {
	var r Matrix4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	t := Vector3{m[0][3], m[1][3], m[2][3]}
	nt := r.TransformDirection(t).Scale(-1)
	r[0][3], r[1][3], r[2][3] = nt.X, nt.Y, nt.Z
	r[3][3] = 1
	return r
}

func (m Matrix4) cofactorInverse() Matrix4 {
	var inv [16]float32
	a := [16]float32{
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3],
	}

	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]

	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]

	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]

	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det == 0 {
		return Identity4()
	}
	det = 1 / det

	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = inv[i*4+j] * det
		}
	}
	return r
}

// degToRad converts a public-surface angle in degrees to the radians used
// internally by every trigonometric computation.
func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}

// RotationXYZ builds a combined rotation matrix from Euler angles, in
// degrees, applied in X then Y then Z order.
func RotationXYZ(rx, ry, rz float32) Matrix4 {
	rx, ry, rz = degToRad(rx), degToRad(ry), degToRad(rz)
	sx, cx := float32(math.Sin(float64(rx))), float32(math.Cos(float64(rx)))
	sy, cy := float32(math.Sin(float64(ry))), float32(math.Cos(float64(ry)))
	sz, cz := float32(math.Sin(float64(rz))), float32(math.Cos(float64(rz)))

	x := Identity4()
	x[1][1], x[1][2] = cx, -sx
	x[2][1], x[2][2] = sx, cx

	y := Identity4()
	y[0][0], y[0][2] = cy, sy
	y[2][0], y[2][2] = -sy, cy

	z := Identity4()
	z[0][0], z[0][1] = cz, -sz
	z[1][0], z[1][1] = sz, cz

	return z.Mul(y).Mul(x)
}

// Translation builds a pure translation matrix.
func Translation(v Vector3) Matrix4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

// LookAt builds a camera-space (world-to-camera) view matrix for an
// eye positioned at eye looking toward target, with the given up vector.
func LookAt(eye, target, up Vector3) Matrix4 {
	zAxis := target.Sub(eye).Normalise()
	xAxis := up.Cross(zAxis).Normalise()
	yAxis := zAxis.Cross(xAxis)

	m := Identity4()
	m[0][0], m[0][1], m[0][2] = xAxis.X, xAxis.Y, xAxis.Z
	m[1][0], m[1][1], m[1][2] = yAxis.X, yAxis.Y, yAxis.Z
	m[2][0], m[2][1], m[2][2] = zAxis.X, zAxis.Y, zAxis.Z
	m[0][3] = -xAxis.Dot(eye)
	m[1][3] = -yAxis.Dot(eye)
	m[2][3] = -zAxis.Dot(eye)
	return m
}
