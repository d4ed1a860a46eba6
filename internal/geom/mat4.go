package geom

import "math"

// Mat4 is a row-major 4x4 transformation matrix.
// The zero value is NOT the identity; use Identity().
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m.M[0][3] = x
	m.M[1][3] = y
	m.M[2][3] = z
	return m
}

// Rotation returns a matrix rotating by angle radians around axis.
// The axis is normalized internally (Rodrigues' rotation formula).
func Rotation(axis Vec3, angle float64) Mat4 {
	m := Identity()
	a := axis.Normalized()
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	m.M[0][0] = t*a.X*a.X + c
	m.M[0][1] = t*a.X*a.Y - s*a.Z
	m.M[0][2] = t*a.X*a.Z + s*a.Y

	m.M[1][0] = t*a.X*a.Y + s*a.Z
	m.M[1][1] = t*a.Y*a.Y + c
	m.M[1][2] = t*a.Y*a.Z - s*a.X

	m.M[2][0] = t*a.X*a.Z - s*a.Y
	m.M[2][1] = t*a.Y*a.Z + s*a.X
	m.M[2][2] = t*a.Z*a.Z + c

	return m
}

// Scaling returns a matrix scaling by (sx, sy, sz).
func Scaling(sx, sy, sz float64) Mat4 {
	m := Identity()
	m.M[0][0] = sx
	m.M[1][1] = sy
	m.M[2][2] = sz
	return m
}

// Mul returns the matrix product m * o (m applied after o when
// transforming column-vector points).
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * o.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies m to the point v (w = 1), performing the
// perspective divide when the resulting w is neither 0 nor 1.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	x := m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z + m.M[0][3]
	y := m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z + m.M[1][3]
	z := m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z + m.M[2][3]
	w := m.M[3][0]*v.X + m.M[3][1]*v.Y + m.M[3][2]*v.Z + m.M[3][3]

	if w != 1 && w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}
