package scene

import (
	"fmt"

	"pfeifer.dev/scened/settings"
)

// MeasureKind selects one telemetry readout for a measure slot. The numeric
// values are stored in the MeasureSlot params, so order is append-only.
type MeasureKind int

const (
	MeasureSteeringAngle MeasureKind = iota
	MeasureDesiredSteeringAngle
	MeasureSteeringTorqueEps
	MeasureEngineRPM
	MeasureAcceleration
	MeasureLatAccel
	MeasureAltitude
	MeasurePercentGrade
	MeasurePercentGradeDevice
	MeasureFollowLevel
	MeasureLeadTTC
	MeasureLeadDistance
	MeasureLeadDistanceTime
	MeasureLeadDesiredDistance
	MeasureLeadDesiredDistanceTime
	MeasureLeadCosts
	MeasureLeadVelocityRel
	MeasureLeadVelocityAbs
	MeasureGpsAccuracy
	MeasureCPUTempAndPercentF
	MeasureCPUTempAndPercentC
	MeasureCPUTempF
	MeasureCPUTempC
	MeasureCPUPercent
	MeasureMemoryTempF
	MeasureMemoryTempC
	MeasureAmbientTempF
	MeasureAmbientTempC
	MeasureFanSpeed
	MeasureMemoryUsage
	MeasureFreeSpace
	MeasureVisionCurLatAccel
	MeasureVisionMaxVForCurCurv
	MeasureVisionMaxPredLatAccel

	NumMeasures
)

// Measure is one formatted readout: label, value, unit, and the value color.
type Measure struct {
	Label string
	Value string
	Unit  string
	Color RGBA
}

// measureFuncs maps each metric kind to a pure formatter over the scene.
var measureFuncs = map[MeasureKind]func(*Scene) Measure{
	MeasureSteeringAngle:           measureSteeringAngle,
	MeasureDesiredSteeringAngle:    measureDesiredSteeringAngle,
	MeasureSteeringTorqueEps:       measureSteeringTorqueEps,
	MeasureEngineRPM:               measureEngineRPM,
	MeasureAcceleration:            simpleMeasure("ACCEL", "m/s²", func(s *Scene) float32 { return s.AEgo }),
	MeasureLatAccel:                simpleMeasure("LAT ACC", "m/s²", func(s *Scene) float32 { return s.LatAccel }),
	MeasureAltitude:                measureAltitude,
	MeasurePercentGrade:            measurePercentGrade,
	MeasurePercentGradeDevice:      measurePercentGradeDevice,
	MeasureFollowLevel:             measureFollowLevel,
	MeasureLeadTTC:                 measureLeadTTC,
	MeasureLeadDistance:            measureLeadDistance,
	MeasureLeadDistanceTime:        measureLeadDistanceTime,
	MeasureLeadDesiredDistance:     measureLeadDesiredDistance,
	MeasureLeadDesiredDistanceTime: measureLeadDesiredDistanceTime,
	MeasureLeadCosts:               measureLeadCosts,
	MeasureLeadVelocityRel:         measureLeadVelocityRel,
	MeasureLeadVelocityAbs:         measureLeadVelocityAbs,
	MeasureGpsAccuracy:             measureGpsAccuracy,
	MeasureCPUTempAndPercentF:      measureCPUTempAndPercent(true),
	MeasureCPUTempAndPercentC:      measureCPUTempAndPercent(false),
	MeasureCPUTempF:                tempMeasure("CPU TEMP", true, func(s *Scene) float32 { return s.CPUTemp }),
	MeasureCPUTempC:                tempMeasure("CPU TEMP", false, func(s *Scene) float32 { return s.CPUTemp }),
	MeasureCPUPercent:              measureCPUPercent,
	MeasureMemoryTempF:             tempMeasure("MEM TEMP", true, func(s *Scene) float32 { return s.MemoryTemp }),
	MeasureMemoryTempC:             tempMeasure("MEM TEMP", false, func(s *Scene) float32 { return s.MemoryTemp }),
	MeasureAmbientTempF:            tempMeasure("AMB TEMP", true, func(s *Scene) float32 { return s.AmbientTemp }),
	MeasureAmbientTempC:            tempMeasure("AMB TEMP", false, func(s *Scene) float32 { return s.AmbientTemp }),
	MeasureFanSpeed:                measureFanSpeed,
	MeasureMemoryUsage:             measureMemoryUsage,
	MeasureFreeSpace:               measureFreeSpace,
	MeasureVisionCurLatAccel:       simpleMeasure("V:LAT ACC", "m/s²", func(s *Scene) float32 { return s.VisionCurLatAccel }),
	MeasureVisionMaxVForCurCurv:    simpleMeasure("V:MX CUR V", "mph", func(s *Scene) float32 { return s.VisionMaxVForCurCurv * settings.MS_TO_MPH }),
	MeasureVisionMaxPredLatAccel:   simpleMeasure("V:MX PLA", "m/s²", func(s *Scene) float32 { return s.VisionMaxPredLatAccel }),
}

// Measures formats the configured measure slots.
func (s *Scene) Measures() []Measure {
	out := make([]Measure, 0, s.MeasureNumSlots)
	for i := 0; i < s.MeasureNumSlots && i < MaxMeasureSlots; i++ {
		out = append(out, s.Measure(s.MeasureSlots[i]))
	}
	return out
}

// Measure formats a single readout from the current scene. Unknown kinds
// render as a blank slot.
func (s *Scene) Measure(kind MeasureKind) Measure {
	f, ok := measureFuncs[kind]
	if !ok {
		return Measure{Color: ColorWhite}
	}
	return f(s)
}

func simpleMeasure(label, unit string, value func(*Scene) float32) func(*Scene) Measure {
	return func(s *Scene) Measure {
		return Measure{
			Label: label,
			Value: fmt.Sprintf("%.1f", value(s)),
			Unit:  unit,
			Color: ColorWhite,
		}
	}
}

func tempMeasure(label string, fahrenheit bool, temp func(*Scene) float32) func(*Scene) Measure {
	return func(s *Scene) Measure {
		v := temp(s)
		unit := "°C"
		if fahrenheit {
			v = celsiusToF(v)
			unit = "°F"
		}
		return Measure{
			Label: label,
			Value: fmt.Sprintf("%.0f", v),
			Unit:  unit,
			Color: ThermalColor(s.ThermalStatus),
		}
	}
}

func measureSteeringAngle(s *Scene) Measure {
	return Measure{
		Label: "REAL STEER",
		Value: fmt.Sprintf("%.0f°", s.SteeringAngleDeg),
		Color: whiteToRed(0.0333 * abs32(s.SteeringAngleDeg)),
	}
}

func measureDesiredSteeringAngle(s *Scene) Measure {
	ms := Measure{
		Label: "REL:DES STR.",
		Color: whiteToRed(0.0333 * abs32(s.SteeringAngleDeg)),
	}
	if s.Engaged {
		ms.Value = fmt.Sprintf("%.0f°:%.0f°", s.SteeringAngleDeg, s.SteeringAngleDes)
	} else {
		ms.Value = fmt.Sprintf("%.0f°", s.SteeringAngleDeg)
	}
	return ms
}

func measureSteeringTorqueEps(s *Scene) Measure {
	return Measure{
		Label: "EPS TRQ",
		Value: fmt.Sprintf("%.1f", s.SteeringTorqueEps),
		Unit:  "Nm",
		Color: ColorWhite,
	}
}

func measureEngineRPM(s *Scene) Measure {
	ms := Measure{Label: "ENG RPM", Color: ColorWhite}
	if s.EngineRPM == 0 {
		ms.Value = "OFF"
	} else {
		ms.Value = fmt.Sprintf("%d", s.EngineRPM)
	}
	return ms
}

func measureAltitude(s *Scene) Measure {
	ms := Measure{Label: "ALTITUDE", Color: ColorWhite}
	if s.GpsAccuracy != 0 {
		if s.IsMetric {
			ms.Value = fmt.Sprintf("%.0f", s.Altitude)
			ms.Unit = "m"
		} else {
			ms.Value = fmt.Sprintf("%.0f", s.Altitude*settings.METER_TO_FOOT)
			ms.Unit = "ft"
		}
	}
	return ms
}

func measurePercentGrade(s *Scene) Measure {
	ms := Measure{Label: "GRADE (GPS)", Color: ColorWhite}
	if s.GradeValid() {
		grade := float32(s.Grade.Average())
		ms.Value = fmt.Sprintf("%.1f%%", grade)
		ms.Color = whiteToRed(0.125 * abs32(grade))
	} else {
		ms.Value = "-"
	}
	return ms
}

func measurePercentGradeDevice(s *Scene) Measure {
	return Measure{
		Label: "GRADE",
		Value: fmt.Sprintf("%.1f%%", s.PercentGradeDevice),
		Color: whiteToRed(0.125 * abs32(s.PercentGradeDevice)),
	}
}

func measureFollowLevel(s *Scene) Measure {
	ms := Measure{Label: "GAP", Color: ColorWhite}
	if s.DynamicFollowActive {
		ms.Value = fmt.Sprintf("%.1f", s.DynamicFollowLevel)
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadTTC(s *Scene) Measure {
	ms := Measure{Label: "TTC", Unit: "s", Color: ColorWhite}
	if s.LeadStatus && s.LeadVRel < 0 {
		ttc := -s.LeadDRel / s.LeadVRel
		ms.Color = redToWhite(0.333 * ttc)
		switch {
		case ttc > 99:
			ms.Value = "99+"
		case ttc >= 10:
			ms.Value = fmt.Sprintf("%.0f", ttc)
		default:
			ms.Value = fmt.Sprintf("%.1f", ttc)
		}
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadDistance(s *Scene) Measure {
	ms := Measure{Label: "REL DIST", Color: ColorWhite}
	if s.LeadStatus {
		if s.IsMetric {
			ms.Color = redToWhite(0.0333 * s.LeadDRel)
			ms.Value = fmt.Sprintf("%.0f", s.LeadDRel)
		} else {
			dFt := s.LeadDRel * settings.METER_TO_FOOT
			ms.Color = redToWhite(0.01 * dFt)
			ms.Value = fmt.Sprintf("%.0f", dFt)
		}
	} else {
		ms.Value = "-"
	}
	if s.IsMetric {
		ms.Unit = "m"
	} else {
		ms.Unit = "ft"
	}
	return ms
}

func measureLeadDistanceTime(s *Scene) Measure {
	ms := Measure{Label: "REL DIST", Unit: "s", Color: ColorWhite}
	if s.LeadStatus && s.VEgo > 0.5 {
		followT := s.LeadDRel / s.VEgo
		ms.Color = redToWhite(0.6667 * followT)
		ms.Value = fmt.Sprintf("%.1f", followT)
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadDesiredDistance(s *Scene) Measure {
	ms := Measure{Label: "REL:DES DIST", Color: ColorWhite}
	followD := s.DesiredFollowDistance*s.VEgo + s.StoppingDistance
	if s.LeadStatus {
		if s.IsMetric {
			ms.Color = redToWhite(0.0333 * s.LeadDRel)
			ms.Value = fmt.Sprintf("%d:%d", int(s.LeadDRel), int(followD))
		} else {
			ms.Color = redToWhite(0.01 * s.LeadDRel * settings.METER_TO_FOOT)
			ms.Value = fmt.Sprintf("%d:%d",
				int(s.LeadDRel*settings.METER_TO_FOOT),
				int(followD*settings.METER_TO_FOOT))
		}
	} else {
		ms.Value = "-"
	}
	if s.IsMetric {
		ms.Unit = "m"
	} else {
		ms.Unit = "ft"
	}
	return ms
}

func measureLeadDesiredDistanceTime(s *Scene) Measure {
	ms := Measure{Label: "REL:DES DIST", Unit: "s", Color: ColorWhite}
	if s.LeadStatus && s.VEgo > 0.5 {
		followT := s.LeadDRel / s.VEgo
		desFollowT := s.DesiredFollowDistance + s.StoppingDistance/s.VEgo
		ms.Color = redToWhite(0.6667 * followT)
		ms.Value = fmt.Sprintf("%.1f:%.1f", followT, desFollowT)
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadCosts(s *Scene) Measure {
	ms := Measure{Label: "D:A COST", Color: ColorWhite}
	if s.LeadStatus && s.VEgo > 0.5 {
		ms.Value = fmt.Sprintf("%.1f:%.1f", s.FollowDistanceCost, s.FollowAccelCost)
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadVelocityRel(s *Scene) Measure {
	ms := Measure{Label: "REL SPEED", Unit: speedUnit(s.IsMetric), Color: ColorWhite}
	if s.LeadStatus {
		ms.Color = whiteToRed(-0.2 * s.LeadVRel)
		if s.IsMetric {
			ms.Value = fmt.Sprintf("%.1f", s.LeadVRel*settings.MS_TO_KPH)
		} else {
			ms.Value = fmt.Sprintf("%.1f", s.LeadVRel*settings.MS_TO_MPH)
		}
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureLeadVelocityAbs(s *Scene) Measure {
	ms := Measure{Label: "LEAD SPD", Unit: speedUnit(s.IsMetric), Color: ColorWhite}
	if s.LeadStatus {
		v := s.LeadV * settings.MS_TO_MPH
		if s.IsMetric {
			v = s.LeadV * settings.MS_TO_KPH
		}
		if v < 100 {
			ms.Value = fmt.Sprintf("%.1f", v)
		} else {
			ms.Value = fmt.Sprintf("%.0f", v)
		}
	} else {
		ms.Value = "-"
	}
	return ms
}

func measureGpsAccuracy(s *Scene) Measure {
	ms := Measure{Label: "GPS PREC", Color: ColorWhite}
	if s.GpsAccuracy != 0 {
		if s.GpsAccuracy > 1.3 {
			ms.Color = RGBA{255, 0, 0, 200}
		} else if s.GpsAccuracy > 0.85 {
			ms.Color = RGBA{255, 188, 3, 200}
		}
		switch {
		case s.GpsAccuracy > 99:
			ms.Value = "None"
		case s.GpsAccuracy > 9.99:
			ms.Value = fmt.Sprintf("%.1f", s.GpsAccuracy)
		default:
			ms.Value = fmt.Sprintf("%.2f", s.GpsAccuracy)
		}
		ms.Unit = fmt.Sprintf("%d", s.SatelliteCount)
	}
	return ms
}

func measureCPUTempAndPercent(fahrenheit bool) func(*Scene) Measure {
	return func(s *Scene) Measure {
		ms := Measure{
			Label: "CPU",
			Unit:  fmt.Sprintf("%d%%", s.CPUPerc),
			Color: ThermalColor(s.ThermalStatus),
		}
		if fahrenheit {
			ms.Value = fmt.Sprintf("%.0f°F", celsiusToF(s.CPUTemp))
		} else {
			ms.Value = fmt.Sprintf("%.0f°C", s.CPUTemp)
		}
		return ms
	}
}

func measureCPUPercent(s *Scene) Measure {
	return Measure{
		Label: "CPU PERC",
		Value: fmt.Sprintf("%d%%", s.CPUPerc),
		Color: ThermalColor(s.ThermalStatus),
	}
}

func measureFanSpeed(s *Scene) Measure {
	return Measure{
		Label: "FAN",
		Value: fmt.Sprintf("%d%%", s.FanSpeed),
		Color: ThermalColor(s.ThermalStatus),
	}
}

func measureMemoryUsage(s *Scene) Measure {
	return Measure{
		Label: "MEM USED",
		// red by 85% usage
		Color: whiteToRed(0.011764706 * float32(s.MemoryUsage)),
		Value: fmt.Sprintf("%d%%", s.MemoryUsage),
	}
}

func measureFreeSpace(s *Scene) Measure {
	return Measure{
		Label: "SSD FREE",
		// white at or above 20% free
		Color: redToWhite(0.05 * s.FreeSpace),
		Value: fmt.Sprintf("%.0f%%", s.FreeSpace),
	}
}

func speedUnit(metric bool) string {
	if metric {
		return "km/h"
	}
	return "mph"
}

func celsiusToF(c float32) float32 {
	return c*1.8 + 32
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
