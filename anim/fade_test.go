package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFadeAdvanceNoOvershoot(t *testing.T) {
	f := NewFade(0, 0, 1, 1)

	assert.InDelta(t, 0.4, f.Advance(1, 0.4), 1e-9)
	// more time than the remaining distance clamps at the target
	assert.InDelta(t, 1.0, f.Advance(1, 2.0), 1e-9)
	assert.InDelta(t, 1.0, f.Advance(1, 3.0), 1e-9)
}

func TestFadeAdvanceDown(t *testing.T) {
	f := NewFade(1, 0, 1, 2)

	assert.InDelta(t, 0.8, f.Advance(0, 0.1), 1e-9)
	assert.InDelta(t, 0.0, f.Advance(0, 5.0), 1e-9)
}

func TestFadeTargetClampedToBounds(t *testing.T) {
	f := NewFade(0, -1, 1, 10)

	assert.InDelta(t, 1.0, f.Advance(5, 1.0), 1e-9)
	assert.InDelta(t, -1.0, f.Advance(-5, 2.0), 1e-9)
}

func TestFadeHoldKeepsClockCurrent(t *testing.T) {
	f := NewFade(0, 0, 1, 1)

	// held for five seconds, then a half second of real movement
	f.Hold(5.0)
	assert.InDelta(t, 0.5, f.Advance(1, 5.5), 1e-9)
}

func TestFadeSnap(t *testing.T) {
	f := NewFade(0, 0, 1, 1)

	f.Snap(0.7, 3.0)
	assert.InDelta(t, 0.7, f.Value, 1e-9)
	// snap outside the bounds clamps
	f.Snap(9, 3.0)
	assert.InDelta(t, 1.0, f.Value, 1e-9)
}

func TestFadeRetargetAsymmetric(t *testing.T) {
	f := NewFade(0, 0, 1, 1)

	f.Retarget(1, 0.5, 2.0)
	assert.InDelta(t, 2.0, f.Step, 1e-9)

	f.Snap(1, 0)
	f.Retarget(0, 0.5, 2.0)
	assert.InDelta(t, 0.5, f.Step, 1e-9)
}

func TestFadeBackwardsClockDoesNotMove(t *testing.T) {
	f := NewFade(0, 0, 1, 1)
	f.Hold(10)

	assert.InDelta(t, 0.0, f.Advance(1, 5), 1e-9)
}

func TestFirstOrderFilterConverges(t *testing.T) {
	f := NewFirstOrderFilter(0, 10, 1)

	assert.InDelta(t, 0.1, f.Update(1), 1e-9)
	for i := 0; i < 200; i++ {
		f.Update(1)
	}
	assert.InDelta(t, 1.0, f.X, 1e-6)
}

func TestFirstOrderFilterGainClamped(t *testing.T) {
	// dt longer than the time constant degenerates to pass-through
	f := NewFirstOrderFilter(0, 1, 5)
	assert.Equal(t, 42.0, f.Update(42))
}

func TestFirstOrderFilterReset(t *testing.T) {
	f := NewFirstOrderFilter(0, 10, 1)
	f.Update(100)
	f.Reset(75)
	assert.Equal(t, 75.0, f.X)
}
