package math

import (
	m "math"

	"gonum.org/v1/gonum/mat"
)

// EulerToRot builds the rotation for intrinsic roll/pitch/yaw angles,
// R = Rz(yaw) * Ry(pitch) * Rx(roll).
func EulerToRot(roll, pitch, yaw float64) Mat3 {
	cr, sr := m.Cos(roll), m.Sin(roll)
	cp, sp := m.Cos(pitch), m.Sin(pitch)
	cy, sy := m.Cos(yaw), m.Sin(yaw)

	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cr, -sr,
		0, sr, cr,
	})
	ry := mat.NewDense(3, 3, []float64{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	})
	rz := mat.NewDense(3, 3, []float64{
		cy, -sy, 0,
		sy, cy, 0,
		0, 0, 1,
	})

	var zy, zyx mat.Dense
	zy.Mul(rz, ry)
	zyx.Mul(&zy, rx)

	var out Mat3
	for i := range 3 {
		for j := range 3 {
			out[i*3+j] = float32(zyx.At(i, j))
		}
	}
	return out
}
