package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMat3InDelta(t *testing.T, expected, actual Mat3, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "element %d", i)
	}
}

func TestEulerToRotIdentity(t *testing.T) {
	assertMat3InDelta(t, Identity3(), EulerToRot(0, 0, 0), 1e-6)
}

func TestEulerToRotPureRoll(t *testing.T) {
	// a quarter roll carries Y onto Z
	r := EulerToRot(m.Pi/2, 0, 0)
	v := r.MulVec(Vec3{0, 1, 0})
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)
	assert.InDelta(t, 1, v.Z, 1e-6)
}

func TestEulerToRotPureYaw(t *testing.T) {
	// a quarter yaw carries X onto Y
	r := EulerToRot(0, 0, m.Pi/2)
	v := r.MulVec(Vec3{1, 0, 0})
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 1, v.Y, 1e-6)
	assert.InDelta(t, 0, v.Z, 1e-6)
}

func TestEulerToRotComposition(t *testing.T) {
	// intrinsic order is Rz(yaw) * Ry(pitch) * Rx(roll)
	roll, pitch, yaw := 0.1, -0.2, 0.3
	composed := EulerToRot(0, 0, yaw).
		Mul(EulerToRot(0, pitch, 0)).
		Mul(EulerToRot(roll, 0, 0))
	assertMat3InDelta(t, composed, EulerToRot(roll, pitch, yaw), 1e-5)
}

func TestMat3MulVec(t *testing.T) {
	a := Mat3{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	}
	v := a.MulVec(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{2, 3, 1}, v)
}

func TestMat3MulIdentity(t *testing.T) {
	a := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	assert.Equal(t, a, a.Mul(Identity3()))
	assert.Equal(t, a, Identity3().Mul(a))
}
