package utils

import (
	"time"

	m "pfeifer.dev/scened/math"
)

// Float32Tracker remembers the previous distinct value of a signal and when
// it last changed.
type Float32Tracker struct {
	LastValue   float32
	Value       float32
	UpdatedTime time.Time
}

func (t *Float32Tracker) Update(val float32) (updated bool) {
	if t.Value != val {
		t.LastValue = t.Value
		t.UpdatedTime = time.Now()
		t.Value = val
		return true
	}
	return false
}

// UpdateTracker measures the observed interval between calls, smoothed over
// a moving window. Used to watch the real tick cadence of the main loop.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}
