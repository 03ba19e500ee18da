package scene

import (
	"pfeifer.dev/scened/cereal/log"
	m "pfeifer.dev/scened/math"
)

type RGBA struct {
	R, G, B, A uint8
}

var (
	ColorWhite = RGBA{255, 255, 255, 200}

	// StatusColors indexed by Status.
	StatusColors = [4]RGBA{
		StatusDisengaged: {0x17, 0x33, 0x49, 0xc8},
		StatusEngaged:    {0x17, 0x86, 0x44, 0xf1},
		StatusWarning:    {0xDA, 0x6F, 0x25, 0xf1},
		StatusAlert:      {0xC9, 0x22, 0x31, 0xf1},
	}

	// TurnControllerColors indexed by VisionTurnControllerState.
	TurnControllerColors = [4]RGBA{
		log.VisionTurnControllerState_disabled: {0x00, 0x00, 0x00, 0xff},
		log.VisionTurnControllerState_entering: {0xC9, 0x22, 0x31, 0xf1},
		log.VisionTurnControllerState_turning:  {0xDA, 0x6F, 0x25, 0xf1},
		log.VisionTurnControllerState_leaving:  {0x17, 0x86, 0x44, 0xf1},
	}
)

// InterpAlertColor blends the engaged color through warning to alert as p
// runs over [0, 1], in two linear segments split at 0.5.
func InterpAlertColor(p float32) RGBA {
	if p <= 0 {
		return StatusColors[StatusEngaged]
	}
	if p >= 1 {
		return StatusColors[StatusAlert]
	}

	var c1, c2 RGBA
	if p <= 0.5 {
		c1, c2 = StatusColors[StatusEngaged], StatusColors[StatusWarning]
	} else {
		p -= 0.5
		c1, c2 = StatusColors[StatusWarning], StatusColors[StatusAlert]
	}
	p *= 2

	q := 1 - p
	return RGBA{
		R: uint8(float32(c1.R)*q + float32(c2.R)*p),
		G: uint8(float32(c1.G)*q + float32(c2.G)*p),
		B: uint8(float32(c1.B)*q + float32(c2.B)*p),
		A: uint8(float32(c1.A)*q + float32(c2.A)*p),
	}
}

// ThermalColor maps a thermal status to the measure value color.
func ThermalColor(ts log.ThermalStatus) RGBA {
	switch ts {
	case log.ThermalStatus_green:
		return RGBA{0, 255, 0, 200}
	case log.ThermalStatus_yellow:
		return RGBA{255, 128, 0, 200}
	default:
		return RGBA{255, 0, 0, 200}
	}
}

// whiteToRed shades white toward red as p runs from 0 to 2; white at 0,
// fully red at 2.
func whiteToRed(p float32) RGBA {
	g := m.Clamp(255-0.5*p*255, 0, 255)
	b := m.Clamp(255-p*255, 0, 255)
	return RGBA{255, uint8(g), uint8(b), 200}
}

// redToWhite shades red toward white as p grows; fully red at 0, white from
// p = 1 up.
func redToWhite(p float32) RGBA {
	g := m.Clamp((0.5+p)*255, 0, 255)
	b := m.Clamp(p*255, 0, 255)
	return RGBA{255, uint8(g), uint8(b), 200}
}
