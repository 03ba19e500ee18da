package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"pfeifer.dev/scened/utils"
)

const (
	backlightPath      = "/sys/class/backlight/panel0-backlight/brightness"
	backlightPowerPath = "/sys/class/backlight/panel0-backlight/bl_power"
	backlightMax       = 1023
)

// setBrightness maps a 0-100 percent to the panel backlight range. Failures
// are expected off-device and only logged at debug.
func setBrightness(percent int) {
	value := percent * backlightMax / 100
	err := os.WriteFile(backlightPath, []byte(strconv.Itoa(value)), 0o644)
	utils.Logde(errors.Wrap(err, "could not set backlight brightness"))
}

// setDisplayPower writes the panel power state, 0 for on and 4 for off per
// the kernel backlight interface.
func setDisplayPower(on bool) {
	value := "4"
	if on {
		value = "0"
	}
	err := os.WriteFile(backlightPowerPath, []byte(value), 0o644)
	utils.Logde(errors.Wrap(err, "could not set display power"))
}
