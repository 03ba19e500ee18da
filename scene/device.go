package scene

import (
	gomath "math"

	"pfeifer.dev/scened/anim"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/settings"
	"pfeifer.dev/scened/utils"
)

const (
	backlightTs      = 10.0
	backlightDt      = 1.0 / settings.UI_FREQ
	backlightOffroad = 75.0

	awakeTimeoutFrames = 30 * settings.UI_FREQ
	accelSamples       = 5 * settings.UI_FREQ
)

// Device drives the display backlight and wakefulness from the scene. The
// brightness follows a perceptual mapping of the camera light estimate,
// smoothed and scaled by the screen dim fade; the display stays awake for a
// timeout window refreshed by ignition or a tap while offroad.
type Device struct {
	// SetBrightness and SetDisplayPower are the hardware hooks; either may
	// be nil.
	SetBrightness   func(percent int)
	SetDisplayPower func(on bool)

	Awake bool

	filter       anim.FirstOrderFilter
	brightness   utils.Float32Tracker
	awakeTimeout int
	accelPrev    float32
	gyroPrev     float32
}

func NewDevice() *Device {
	return &Device{
		filter: anim.NewFirstOrderFilter(backlightOffroad, backlightTs, backlightDt),
		// a level the mapping can never produce, so the first tick always
		// pushes a known brightness to the hardware
		brightness: utils.Float32Tracker{Value: -1},
	}
}

func (d *Device) Update(s *Scene) {
	d.updateBrightness(s)
	d.updateWakefulness(s)
}

func (d *Device) setAwake(on, reset bool) {
	if on != d.Awake {
		d.Awake = on
		if d.SetDisplayPower != nil {
			d.SetDisplayPower(on)
		}
	}
	if reset {
		d.awakeTimeout = awakeTimeoutFrames
	}
}

func (d *Device) updateBrightness(s *Scene) {
	clipped := 100 * float64(s.LightSensor)

	// CIE 1931 psychometric lightness
	if clipped <= 8 {
		clipped = clipped / 903.3
	} else {
		clipped = gomath.Pow((clipped+16)/116, 3)
	}
	clipped = m.Clamp(100*clipped, 10, 100)

	if !s.Started {
		clipped = backlightOffroad
	}

	brightness := int(d.filter.Update(clipped))
	if !d.Awake {
		brightness = 0
	} else if s.Started && s.ScreenDimFade.Value < 1 {
		brightness = m.Clamp(int(float64(brightness)*s.ScreenDimFade.Value), 1, 100)
	}

	if d.brightness.Update(float32(brightness)) && d.SetBrightness != nil {
		d.SetBrightness(brightness)
	}
}

func (d *Device) updateWakefulness(s *Scene) {
	d.awakeTimeout = max(d.awakeTimeout-1, 0)

	shouldWake := s.Started || s.Ignition
	if !shouldWake {
		// tap detection while the display is off
		accelTrigger := abs32(s.AccelSensor-d.accelPrev) > 0.2
		gyroTrigger := abs32(s.GyroSensor-d.gyroPrev) > 0.15
		shouldWake = accelTrigger && gyroTrigger
		d.gyroPrev = s.GyroSensor
		d.accelPrev = (d.accelPrev*(accelSamples-1) + s.AccelSensor) / accelSamples
	}

	d.setAwake(d.awakeTimeout > 0, shouldWake)
}
