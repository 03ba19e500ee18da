package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceWakesOnIgnition(t *testing.T) {
	d := NewDevice()
	var powered []bool
	d.SetDisplayPower = func(on bool) { powered = append(powered, on) }

	s := newTestScene()
	s.Ignition = true

	// the first tick arms the timeout, the second turns the display on
	d.Update(s)
	d.Update(s)
	require.True(t, d.Awake)
	assert.Equal(t, []bool{true}, powered)

	// with ignition gone the display stays on until the timeout drains
	s.Ignition = false
	for i := 0; i < awakeTimeoutFrames; i++ {
		d.Update(s)
	}
	assert.False(t, d.Awake)
	assert.Equal(t, []bool{true, false}, powered)
}

func TestDeviceWakesOnTap(t *testing.T) {
	d := NewDevice()
	s := newTestScene()

	// both sensor deltas must trip for a wake
	s.AccelSensor = 0.3
	d.Update(s)
	d.Update(s)
	assert.False(t, d.Awake)

	d = NewDevice()
	s = newTestScene()
	s.AccelSensor = 0.3
	s.GyroSensor = 0.2
	d.Update(s)
	d.Update(s)
	assert.True(t, d.Awake)
}

func TestDeviceBrightnessOffWhileAsleep(t *testing.T) {
	d := NewDevice()
	var levels []int
	d.SetBrightness = func(p int) { levels = append(levels, p) }

	s := newTestScene()
	d.Update(s)

	require.NotEmpty(t, levels)
	assert.Equal(t, 0, levels[0])
}

func TestDeviceBrightnessOffroadLevel(t *testing.T) {
	d := NewDevice()
	var last int
	d.SetBrightness = func(p int) { last = p }

	s := newTestScene()
	s.Ignition = true
	for i := 0; i < 5; i++ {
		d.Update(s)
	}

	// offroad holds the fixed level once awake
	assert.Equal(t, 75, last)
}

func TestDeviceBrightnessScaledByDimFade(t *testing.T) {
	d := NewDevice()
	var last int
	d.SetBrightness = func(p int) { last = p }

	s := newTestScene()
	s.Ignition = true
	s.Started = true
	s.LightSensor = 1 // full daylight
	for i := 0; i < 3; i++ {
		d.Update(s)
	}
	require.Greater(t, last, 50)
	bright := last

	s.ScreenDimFade.Value = 0.01
	d.Update(s)
	assert.Less(t, last, bright)
	assert.GreaterOrEqual(t, last, 1)
}
