package settings

import (
	"time"
)

const (
	UI_FREQ    = 20 // Hz
	LOOP_DELAY = time.Second / UI_FREQ

	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024

	MS_TO_KPH     = 3.6
	KPH_TO_MS     = 1 / 3.6
	MS_TO_MPH     = 2.2369363
	METER_TO_FOOT = 3.28084
)

func GetSegmentSize(name string) int {
	switch name {
	case "modelV2":
		return 4 * DEFAULT_SEGMENT_SIZE
	default:
		return DEFAULT_SEGMENT_SIZE
	}
}
