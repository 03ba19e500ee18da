package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/scened/config"
	m "pfeifer.dev/scened/math"
)

func TestProjectPrincipalPointLandsAtScreenCenter(t *testing.T) {
	cfg := config.Default()
	tr := NewTransform(cfg.RoadCamera, cfg.Display, false)

	// a point on the optical axis maps onto the recentered display origin
	var v Vertex
	ok := tr.Project(m.Vec3{X: 0, Y: 0, Z: 1}, m.Identity3(), &v)

	assert.True(t, ok)
	assert.InDelta(t, 1080, v.X, 1e-2)
	assert.InDelta(t, 690, v.Y, 1e-2)
}

func TestProjectBehindCamera(t *testing.T) {
	cfg := config.Default()
	tr := NewTransform(cfg.RoadCamera, cfg.Display, false)

	var v Vertex
	assert.False(t, tr.Project(m.Vec3{X: 0, Y: 0, Z: -1}, m.Identity3(), &v))
}

func TestProjectOutsideMargin(t *testing.T) {
	cfg := config.Default()
	tr := NewTransform(cfg.RoadCamera, cfg.Display, false)

	// far off to the side, well past the viewport plus margin
	var v Vertex
	ok := tr.Project(m.Vec3{X: 10, Y: 0, Z: 1}, m.Identity3(), &v)

	assert.False(t, ok)
	assert.Greater(t, v.X, float32(cfg.Display.Width))
}

func TestProjectDeviceFrame(t *testing.T) {
	s := newTestScene()
	s.SetCalibration(0, 0, 0)

	// straight ahead in the calibrated frame is the screen center
	var v Vertex
	ok := s.Transform.Project(m.Vec3{X: 10, Y: 0, Z: 0}, s.ViewFromCalib, &v)

	assert.True(t, ok)
	assert.InDelta(t, 1080, v.X, 1e-2)
	assert.InDelta(t, 690, v.Y, 1e-2)
}

func TestWideTransformHalvesZoom(t *testing.T) {
	cfg := config.Default()
	road := NewTransform(cfg.WideCamera, cfg.Display, false)
	wide := NewTransform(cfg.WideCamera, cfg.Display, true)

	assert.InDelta(t, road.zoom/2, wide.zoom, 1e-6)
}

func TestSetCalibration(t *testing.T) {
	s := newTestScene()
	assert.False(t, s.WorldObjectsVisible)

	s.SetCalibration(0, 0, 0)

	assert.True(t, s.WorldObjectsVisible)
	// zero angles leave just the device-to-view axis permutation
	v := s.ViewFromCalib.MulVec(m.Vec3{X: 1, Y: 0, Z: 0})
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)
	assert.InDelta(t, 1, v.Z, 1e-6)
}
