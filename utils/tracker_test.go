package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Tracker(t *testing.T) {
	var tr Float32Tracker

	assert.False(t, tr.Update(0))
	assert.True(t, tr.Update(5))
	assert.False(t, tr.Update(5))
	assert.True(t, tr.Update(6))
	assert.Equal(t, float32(5), tr.LastValue)
	assert.Equal(t, float32(6), tr.Value)
}

func TestUpdateTracker(t *testing.T) {
	var u UpdateTracker
	u.Init(10)

	u.Update()
	u.Update()
	assert.GreaterOrEqual(t, u.DiffMA.Estimate, 0.0)
	assert.False(t, u.Time.Before(u.LastTime))
}
