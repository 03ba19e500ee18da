package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeTrackerZeroUntilRolled(t *testing.T) {
	g := NewGradeTracker(10, 5)

	for i := 0; i < 8; i++ {
		g.Advance(6, float64(i))
	}

	assert.False(t, g.Rolled())
	assert.Equal(t, 0.0, g.Average())
}

func TestGradeTrackerConstantGrade(t *testing.T) {
	g := NewGradeTracker(10, 5)

	// 6m steps climbing at a steady 5 percent
	dist := 0.0
	for i := 0; i < 10; i++ {
		dist += 6
		g.Advance(6, dist*0.05)
	}

	assert.True(t, g.Rolled())
	assert.InDelta(t, 5.0, g.Average(), 1e-9)
}

func TestGradeTrackerConvergesAfterGradeChange(t *testing.T) {
	g := NewGradeTracker(10, 5)

	dist := 0.0
	alt := 0.0
	for i := 0; i < 10; i++ {
		dist += 6
		alt += 6 * 0.02
		g.Advance(6, alt)
	}
	assert.InDelta(t, 2.0, g.Average(), 1e-9)

	// once the window only holds post-change samples the old grade is gone
	for i := 0; i < 30; i++ {
		dist += 6
		alt += 6 * 0.08
		g.Advance(6, alt)
	}
	assert.InDelta(t, 8.0, g.Average(), 1e-9)
}

func TestGradeTrackerSkipsShortSteps(t *testing.T) {
	g := NewGradeTracker(10, 5)

	// nothing recorded until the accumulated distance passes the step
	g.Advance(2, 1)
	g.Advance(2, 2)
	assert.Equal(t, 0.0, g.Distance())

	g.Advance(2, 3)
	assert.InDelta(t, 6.0, g.Distance(), 1e-9)
}

func TestGradeTrackerReset(t *testing.T) {
	g := NewGradeTracker(10, 5)

	dist := 0.0
	for i := 0; i < 20; i++ {
		dist += 6
		g.Advance(6, dist*0.05)
	}
	assert.True(t, g.Rolled())

	g.Reset()
	assert.False(t, g.Rolled())
	assert.Equal(t, 0.0, g.Average())
	assert.Equal(t, 0.0, g.Distance())
}
