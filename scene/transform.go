package scene

import (
	"pfeifer.dev/scened/config"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/settings"
)

// Transform projects calibrated-frame points into screen space: camera
// intrinsics, perspective divide, then the affine transform that maps the
// camera frame onto the display (zoom around the principal point, recentered
// with a vertical offset).
type Transform struct {
	intrinsic m.Mat3
	zoom      float32
	cx, cy    float32
	halfW     float32
	halfH     float32
	width     float32
	height    float32
	margin    float32
}

func NewTransform(cam config.CameraConfig, disp config.DisplayConfig, wide bool) Transform {
	zoom := cam.Zoom / cam.FocalLength
	if wide {
		zoom *= 0.5
	}
	return Transform{
		intrinsic: m.Mat3{
			cam.FocalLength, 0, cam.PrincipalPoint.X,
			0, cam.FocalLength, cam.PrincipalPoint.Y,
			0, 0, 1,
		},
		zoom:   zoom,
		cx:     cam.PrincipalPoint.X,
		cy:     cam.PrincipalPoint.Y,
		halfW:  float32(disp.Width) / 2,
		halfH:  float32(disp.Height)/2 + disp.YOffset,
		width:  float32(disp.Width),
		height: float32(disp.Height),
		margin: settings.Settings.ProjectionMargin,
	}
}

// Project maps a calibrated-frame point to screen space. The vertex is
// always written; the return value reports whether it landed inside the
// viewport plus margin with the point in front of the camera.
func (t *Transform) Project(pt m.Vec3, viewFromCalib m.Mat3, out *Vertex) bool {
	ep := viewFromCalib.MulVec(pt)
	kep := t.intrinsic.MulVec(ep)

	x := kep.X / kep.Z
	y := kep.Y / kep.Z
	out.X = (x-t.cx)*t.zoom + t.halfW
	out.Y = (y-t.cy)*t.zoom + t.halfH

	if kep.Z <= 1e-6 {
		return false
	}
	return out.X >= -t.margin && out.X <= t.width+t.margin &&
		out.Y >= -t.margin && out.Y <= t.height+t.margin
}
