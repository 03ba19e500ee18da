package scene

import (
	gomath "math"

	"github.com/pkg/errors"

	"pfeifer.dev/scened/cereal/log"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/params"
	"pfeifer.dev/scened/settings"
	"pfeifer.dev/scened/utils"
)

const paramsCheckFreq = 0.1 // seconds

// Road camera exposure limits, used to derive the ambient light estimate.
const (
	maxExposureLines = 1904.0
	maxExposureGain  = 10.0
	maxExposure      = maxExposureLines * maxExposureGain / 6
)

// Update folds every fresh topic into the scene, advances the animated
// values, and re-derives the engagement status. Called once per bus tick.
func (s *Scene) Update(bus Bus, now float64) {
	s.Frame = bus.Frame()

	s.updateParams(bus, now)
	s.updateTopics(bus, now)
	s.updateScreenDim(now)
	s.updateIndicators(now)
	s.UpdateStatus(bus, now)
}

func (s *Scene) updateParams(bus Bus, now float64) {
	if bus.Frame()%(5*settings.UI_FREQ) == 0 {
		s.IsMetric = params.GetBool(params.IS_METRIC)
	}

	if now-s.paramsCheckLast > paramsCheckFreq {
		s.paramsCheckLast = now
		s.DisableDisengageOnGas = params.GetBool(params.DISABLE_DISENGAGE_ON_GAS)
		s.SpeedLimitControl = params.GetBool(params.SPEED_LIMIT_CONTROL)
		dimMax := len(s.ScreenDimModes) - 1
		s.ScreenDimMode = m.Clamp(params.GetInt(params.SCREEN_DIM_MODE, dimMax), 0, dimMax)
		if s.DisableDisengageOnGas {
			s.OnePedalModeEnabled = params.GetBool(params.ONE_PEDAL_MODE)
			s.OnePedalEngageOnGas = params.GetBool(params.ONE_PEDAL_ENGAGE_ON_GAS)
			s.OnePedalPauseSteering = params.GetBool(params.ONE_PEDAL_PAUSE_STEERING)
		}
		if s.AccelModeButton {
			s.AccelMode = params.GetInt(params.ACCEL_MODE, 0)
		}
		if s.DynamicFollowButton {
			s.DynamicFollowActive = params.GetBool(params.DYNAMIC_FOLLOW)
		}
	}
}

func (s *Scene) updateTopics(bus Bus, now float64) {
	// engageability and DM state only need 2Hz
	if bus.Frame()%(settings.UI_FREQ/2) == 0 {
		if cs, err := bus.Event("controlsState").ControlsState(); err == nil {
			s.Engageable = cs.Engageable()
		}
		if dm, err := bus.Event("driverMonitoringState").DriverMonitoringState(); err == nil {
			s.DmActive = dm.IsActiveMode()
		}
	}

	if s.Started && bus.Updated("controlsState") {
		cs, err := bus.Event("controlsState").ControlsState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read controls state"))
		} else {
			s.Engaged = cs.Enabled()
			s.VCruise = cs.VCruise()
			s.SteeringAngleDes = cs.AngleErrorDeg() + s.SteeringAngleDeg
		}
	}

	if bus.Updated("carState") {
		cs, err := bus.Event("carState").CarState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read car state"))
		} else {
			s.VEgo = cs.VEgo()
			s.AEgo = cs.AEgo()
			s.SteeringAngleDeg = cs.SteeringAngleDeg()
			s.SteeringTorqueEps = cs.SteeringTorqueEps()
			s.SteerOverride = cs.SteeringPressed()
			s.EngineRPM = int(cs.EngineRPM()/10+0.5) * 10
			s.BrakePercent = int(cs.FrictionBrakePercent())
			s.OnePedalCarActive = cs.OnePedalModeActive() || cs.CoastOnePedalModeActive()
			s.PercentGradeDevice = float32(gomath.Tan(float64(cs.Pitch())) * 100)

			if s.VEgo > 0 {
				s.Grade.Advance(float64(s.VEgo)*(now-s.gradeLastT), s.Altitude)
			}
			s.gradeLastT = now
		}
	}

	if bus.Updated("radarState") {
		rs, err := bus.Event("radarState").RadarState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read radar state"))
		} else if lead, err := rs.LeadOne(); err == nil {
			s.LeadStatus = lead.Status()
			s.LeadDRel = lead.DRel()
			s.LeadVRel = lead.VRel()
			s.LeadV = lead.VLead()
		}
	}

	if bus.Updated("modelV2") {
		model, err := bus.Event("modelV2").ModelV2()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read model"))
		} else {
			s.updateModel(model)
			s.updateLeads(model)
		}
	}

	if bus.Updated("liveCalibration") {
		calib, err := bus.Event("liveCalibration").LiveCalibration()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read calibration"))
		} else if rpy, err := calib.RpyCalib(); err == nil && rpy.Len() >= 3 {
			s.SetCalibration(float64(rpy.At(0)), float64(rpy.At(1)), float64(rpy.At(2)))
		}
	}

	if bus.Updated("pandaState") {
		ps, err := bus.Event("pandaState").PandaState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read panda state"))
		} else {
			s.PandaType = ps.PandaType()
			s.Ignition = ps.IgnitionLine() || ps.IgnitionCan()
		}
	} else if bus.Frame()-bus.RcvFrame("pandaState") > settings.Settings.TopicTimeoutFrames {
		s.PandaType = log.PandaType_unknown
	}

	if !s.Started && bus.Updated("sensorEvents") {
		se, err := bus.Event("sensorEvents").SensorEvents()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read sensor events"))
		} else {
			if se.HasAcceleration() {
				if accel, err := se.Acceleration(); err == nil {
					if v, err := accel.V(); err == nil && v.Len() >= 3 {
						s.AccelSensor = v.At(2)
					}
				}
			}
			if se.HasGyroUncalibrated() {
				if gyro, err := se.GyroUncalibrated(); err == nil {
					if v, err := gyro.V(); err == nil && v.Len() >= 2 {
						s.GyroSensor = v.At(1)
					}
				}
			}
		}
	}

	if bus.Updated("roadCameraState") {
		cam, err := bus.Event("roadCameraState").RoadCameraState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read road camera state"))
		} else {
			ev := cam.Gain() * float32(cam.IntegLines())
			s.LightSensor = m.Clamp(1-ev/maxExposure, 0, 1)
		}
	}

	if ds, err := bus.Event("deviceState").DeviceState(); err == nil {
		s.Started = ds.Started() && s.Ignition
	}
	if bus.Updated("deviceState") {
		ds, err := bus.Event("deviceState").DeviceState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read device state"))
		} else {
			s.ThermalStatus = ds.ThermalStatus()
			s.MemoryTemp = ds.MemoryTempC()
			s.AmbientTemp = ds.AmbientTempC()
			s.FreeSpace = ds.FreeSpacePercent()
			s.FanSpeed = int(ds.FanSpeedPercentDesired())
			s.MemoryUsage = int(ds.MemoryUsagePercent())
			if temps, err := ds.CpuTempC(); err == nil && temps.Len() > 0 {
				s.CPUTemp = temps.At(0)
			}
			if cpus, err := ds.CpuUsagePercent(); err == nil && cpus.Len() > 0 {
				var sum float32
				for i := 0; i < cpus.Len(); i++ {
					sum += cpus.At(i)
				}
				s.CPUPerc = int(sum / float32(cpus.Len()))
			}
		}
	}

	if bus.Updated("ubloxGnss") {
		gnss, err := bus.Event("ubloxGnss").UbloxGnss()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read ublox gnss"))
		} else if gnss.Which() == log.UbloxGnss_Which_measurementReport {
			if report, err := gnss.MeasurementReport(); err == nil {
				s.SatelliteCount = int(report.NumMeas())
			}
		}
	}

	if bus.Updated("gpsLocationExternal") {
		gps, err := bus.Event("gpsLocationExternal").GpsLocationExternal()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read gps location"))
		} else {
			s.GpsAccuracy = gps.Accuracy()
			s.Altitude = gps.Altitude()
		}
	}

	if bus.Updated("liveLocationKalman") {
		loc, err := bus.Event("liveLocationKalman").LiveLocationKalman()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read location kalman"))
		} else {
			s.GpsOK = loc.GpsOK()
			if accel, err := loc.AccelerationCalibrated(); err == nil {
				if v, err := accel.Value(); err == nil && v.Len() >= 2 {
					s.LatAccel = float32(v.At(1))
				}
			}
		}
	}

	if bus.Updated("lateralPlan") {
		lp, err := bus.Event("lateralPlan").LateralPlan()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read lateral plan"))
		} else {
			s.LaneWidth = lp.LaneWidth()
			s.DProb = lp.DProb()
			s.LProb = lp.LProb()
			s.RProb = lp.RProb()
			s.LanelessModeStatus = lp.LanelessMode()
		}
	}

	if bus.Updated("longitudinalPlan") {
		lp, err := bus.Event("longitudinalPlan").LongitudinalPlan()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read longitudinal plan"))
		} else {
			s.DesiredFollowDistance = lp.DesiredFollowDistance()
			s.FollowDistanceCost = lp.LeadDistCost()
			s.FollowAccelCost = lp.LeadAccelCost()
			s.StoppingDistance = lp.StoppingDistance()
			s.DynamicFollowLevel = lp.DynamicFollowLevel()
			s.VisionCurLatAccel = lp.VisionCurrentLateralAcceleration()
			s.VisionMaxVForCurCurv = lp.VisionMaxVForCurrentCurvature()
			s.VisionMaxPredLatAccel = lp.VisionMaxPredictedLateralAcceleration()
			s.VisionTurnState = lp.VisionTurnControllerState()
		}
	}
}

// updateScreenDim advances the dim ladder: the configured mode, promoted one
// step on a warning, snapped to full on an alert, full while offroad.
func (s *Scene) updateScreenDim(now float64) {
	dimMax := len(s.ScreenDimModes) - 1

	if !s.Started {
		s.ScreenDimModeCur = dimMax
		s.ScreenDimFade.Snap(s.ScreenDimModes[dimMax], now)
		s.screenDimModeLast = s.ScreenDimModeCur
		return
	}

	switch s.Status {
	case StatusWarning:
		s.ScreenDimModeCur = min(s.ScreenDimMode+1, dimMax)
	case StatusAlert:
		s.ScreenDimModeCur = dimMax
		s.ScreenDimFade.Snap(s.ScreenDimModes[dimMax], now)
	default:
		s.ScreenDimModeCur = s.ScreenDimMode
	}

	if s.ScreenDimModeCur != s.screenDimModeLast {
		diff := s.ScreenDimModes[s.ScreenDimModeCur] - s.ScreenDimModes[s.screenDimModeLast]
		dur := settings.Settings.ScreenDimFadeDurDown
		if diff > 0 {
			dur = settings.Settings.ScreenDimFadeDurUp
		}
		s.ScreenDimFade.Step = gomath.Abs(diff) / dur
	}
	s.ScreenDimFade.Advance(s.ScreenDimModes[s.ScreenDimModeCur], now)
	s.screenDimModeLast = s.ScreenDimModeCur
}

// updateIndicators advances the brake, one-pedal, and dynamic follow fades.
// The one-pedal fade is held for the first seconds of a session so the icon
// does not flash while upstream state settles.
func (s *Scene) updateIndicators(now float64) {
	var brakeTarget float64
	if s.BrakePercent > settings.Settings.BrakeIndicatorPercent {
		brakeTarget = 1
	}
	s.BrakeFade.Advance(brakeTarget, now)

	if now-s.sessionInitTime > settings.Settings.SessionAnimGate {
		target := -1.0
		if s.OnePedalCarActive ||
			(s.Status == StatusDisengaged && s.VCruise <= 3 &&
				(s.OnePedalModeEnabled || s.DisableDisengageOnGas)) {
			target = 1
		}
		s.OnePedalFade.Advance(target, now)
	} else {
		s.OnePedalFade.Hold(now)
	}

	s.FollowFade.Advance(float64(s.DynamicFollowLevel), now)
}
