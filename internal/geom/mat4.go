package geom

import "math"

// Mat4 is a column-major 4x4 transform, laid out the way GL-style
// renderers expect: element (row, col) lives at m[col*4+row].
type Mat4 struct {
	M [16]float64
}

func Identity() Mat4 {
	var r Mat4
	r.M[0], r.M[5], r.M[10], r.M[15] = 1, 1, 1, 1
	return r
}

func Translate(x, y, z float64) Mat4 {
	r := Identity()
	r.M[12] = x
	r.M[13] = y
	r.M[14] = z
	return r
}

func RotateX(a float64) Mat4 {
	r := Identity()
	s, c := math.Sincos(a)
	r.M[5] = c
	r.M[9] = -s
	r.M[6] = s
	r.M[10] = c
	return r
}

func RotateY(a float64) Mat4 {
	r := Identity()
	s, c := math.Sincos(a)
	r.M[0] = c
	r.M[8] = s
	r.M[2] = -s
	r.M[10] = c
	return r
}

func RotateZ(a float64) Mat4 {
	r := Identity()
	s, c := math.Sincos(a)
	r.M[0] = c
	r.M[4] = -s
	r.M[1] = s
	r.M[5] = c
	return r
}

// Mul returns a*b (apply b first, then a).
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r.M[col*4+row] =
				a.M[0*4+row]*b.M[col*4+0] +
					a.M[1*4+row]*b.M[col*4+1] +
					a.M[2*4+row]*b.M[col*4+2] +
					a.M[3*4+row]*b.M[col*4+3]
		}
	}
	return r
}

// Apply transforms v as a point (w=1).
func (a Mat4) Apply(v Vec3) Vec3 {
	return Vec3{
		X: a.M[0]*v.X + a.M[4]*v.Y + a.M[8]*v.Z + a.M[12],
		Y: a.M[1]*v.X + a.M[5]*v.Y + a.M[9]*v.Z + a.M[13],
		Z: a.M[2]*v.X + a.M[6]*v.Y + a.M[10]*v.Z + a.M[14],
	}
}
