package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(12, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))

	assert.Equal(t, float32(0), Clamp(float32(-1.5), 0, 1))
	assert.Equal(t, 1.0, Clamp(3.7, 0.0, 1.0))
}

func TestMovingAverage(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)

	// first sample seeds the whole window
	assert.Equal(t, 2.0, ma.Update(2))
	assert.Equal(t, 2.0, ma.Estimate)

	ma.Update(4)
	ma.Update(4)
	ma.Update(4)
	// window is now 2,4,4,4
	assert.InDelta(t, 3.5, ma.Estimate, 1e-9)

	ma.Update(4)
	assert.InDelta(t, 4.0, ma.Estimate, 1e-9)
}

func TestMovingAverageReset(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)
	ma.Update(10)
	ma.Reset()
	assert.Equal(t, 3.0, ma.Update(3))
}
