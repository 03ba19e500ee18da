package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/scened/cereal/log"
)

func TestInterpAlertColorEndpoints(t *testing.T) {
	assert.Equal(t, StatusColors[StatusEngaged], InterpAlertColor(0))
	assert.Equal(t, StatusColors[StatusEngaged], InterpAlertColor(-1))
	assert.Equal(t, StatusColors[StatusAlert], InterpAlertColor(1))
	assert.Equal(t, StatusColors[StatusAlert], InterpAlertColor(2))
}

func TestInterpAlertColorMidpoint(t *testing.T) {
	c := InterpAlertColor(0.5)
	w := StatusColors[StatusWarning]
	assert.InDelta(t, w.R, c.R, 1)
	assert.InDelta(t, w.G, c.G, 1)
	assert.InDelta(t, w.B, c.B, 1)
	assert.InDelta(t, w.A, c.A, 1)
}

func TestThermalColor(t *testing.T) {
	assert.Equal(t, RGBA{0, 255, 0, 200}, ThermalColor(log.ThermalStatus_green))
	assert.Equal(t, RGBA{255, 128, 0, 200}, ThermalColor(log.ThermalStatus_yellow))
	assert.Equal(t, RGBA{255, 0, 0, 200}, ThermalColor(log.ThermalStatus_red))
	assert.Equal(t, RGBA{255, 0, 0, 200}, ThermalColor(log.ThermalStatus_danger))
}

func TestWhiteToRed(t *testing.T) {
	assert.Equal(t, ColorWhite, whiteToRed(0))
	assert.Equal(t, RGBA{255, 0, 0, 200}, whiteToRed(2))

	mid := whiteToRed(1)
	assert.Equal(t, uint8(255), mid.R)
	assert.InDelta(t, 127, mid.G, 1)
	assert.Equal(t, uint8(0), mid.B)
}

func TestRedToWhite(t *testing.T) {
	assert.Equal(t, RGBA{255, 127, 0, 200}, redToWhite(0))
	assert.Equal(t, ColorWhite, redToWhite(1))
	assert.Equal(t, ColorWhite, redToWhite(5))
}
