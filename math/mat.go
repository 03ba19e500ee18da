package math

type Vec3 struct {
	X, Y, Z float32
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [9]float32

func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z,
		Y: a[3]*v.X + a[4]*v.Y + a[5]*v.Z,
		Z: a[6]*v.X + a[7]*v.Y + a[8]*v.Z,
	}
}

func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			out[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return out
}
