// Package config holds the device geometry loaded once at startup: camera
// intrinsics, the screen-space zoom constant, and the viewport. Values
// default to the comma three hardware and may be overridden from a yaml
// file for other frame sources.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pfeifer.dev/scened/utils"
)

var ConfigPath string = "/data/scened.yaml"

type CameraConfig struct {
	FocalLength    float32 `yaml:"focal_length"`
	PrincipalPoint struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
	} `yaml:"principal_point"`
	// Zoom is the frame-transform numerator; the effective scale is
	// Zoom / FocalLength.
	Zoom float32 `yaml:"zoom"`
}

type DisplayConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	YOffset float32 `yaml:"y_offset"`
}

type DeviceConfig struct {
	RoadCamera CameraConfig  `yaml:"road_camera"`
	WideCamera CameraConfig  `yaml:"wide_camera"`
	HasWide    bool          `yaml:"has_wide"`
	Display    DisplayConfig `yaml:"display"`
}

// Default is the comma three geometry. The principal points sit at the
// center of the 1928x1208 camera frames.
func Default() DeviceConfig {
	c := DeviceConfig{HasWide: true}

	c.RoadCamera.FocalLength = 2648.0
	c.RoadCamera.PrincipalPoint.X = 964.0
	c.RoadCamera.PrincipalPoint.Y = 604.0
	c.RoadCamera.Zoom = 2912.8

	c.WideCamera.FocalLength = 567.0
	c.WideCamera.PrincipalPoint.X = 964.0
	c.WideCamera.PrincipalPoint.Y = 604.0
	c.WideCamera.Zoom = 2912.8

	c.Display.Width = 2160
	c.Display.Height = 1080
	c.Display.YOffset = 150.0

	return c
}

// Load reads the device config file, falling back to the built-in defaults
// when the file is absent. A malformed file is logged and ignored.
func Load() DeviceConfig {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Logwe(errors.Wrap(err, "could not read device config"))
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		utils.Logwe(errors.Wrap(err, "could not parse device config"))
		return Default()
	}

	return cfg
}
