package scene

import (
	m "pfeifer.dev/scened/math"
)

// viewFromDevice permutes device axes (x forward, y left, z up) into camera
// view axes (x right, y down, z forward).
var viewFromDevice = m.Mat3{
	0, 1, 0,
	0, 0, 1,
	1, 0, 0,
}

// SetCalibration rebuilds the view-from-calibrated rotation from the
// calibration roll/pitch/yaw and marks world objects visible.
func (s *Scene) SetCalibration(roll, pitch, yaw float64) {
	deviceFromCalib := m.EulerToRot(roll, pitch, yaw)
	s.ViewFromCalib = viewFromDevice.Mul(deviceFromCalib)
	s.WorldObjectsVisible = true
}
