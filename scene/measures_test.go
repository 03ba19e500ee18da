package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/scened/cereal/log"
)

func TestMeasuresUsesConfiguredSlots(t *testing.T) {
	s := newTestScene()
	s.MeasureNumSlots = 2
	s.MeasureSlots[0] = MeasureSteeringAngle
	s.MeasureSlots[1] = MeasureEngineRPM
	s.SteeringAngleDeg = -12.4
	s.EngineRPM = 1500

	ms := s.Measures()
	assert.Len(t, ms, 2)
	assert.Equal(t, "REAL STEER", ms[0].Label)
	assert.Equal(t, "-12°", ms[0].Value)
	assert.Equal(t, "ENG RPM", ms[1].Label)
	assert.Equal(t, "1500", ms[1].Value)
}

func TestMeasureEngineRPMOff(t *testing.T) {
	s := newTestScene()
	assert.Equal(t, "OFF", s.Measure(MeasureEngineRPM).Value)
}

func TestMeasureDesiredSteeringAngle(t *testing.T) {
	s := newTestScene()
	s.SteeringAngleDeg = 10
	s.SteeringAngleDes = 12

	assert.Equal(t, "10°", s.Measure(MeasureDesiredSteeringAngle).Value)

	s.Engaged = true
	assert.Equal(t, "10°:12°", s.Measure(MeasureDesiredSteeringAngle).Value)
}

func TestMeasureAltitudeUnits(t *testing.T) {
	s := newTestScene()
	s.Altitude = 100

	// no value without a gps fix
	assert.Equal(t, "", s.Measure(MeasureAltitude).Value)

	s.GpsAccuracy = 1
	s.IsMetric = true
	ms := s.Measure(MeasureAltitude)
	assert.Equal(t, "100", ms.Value)
	assert.Equal(t, "m", ms.Unit)

	s.IsMetric = false
	ms = s.Measure(MeasureAltitude)
	assert.Equal(t, "328", ms.Value)
	assert.Equal(t, "ft", ms.Unit)
}

func TestMeasurePercentGradeRequiresHistory(t *testing.T) {
	s := newTestScene()
	s.GpsAccuracy = 1

	assert.Equal(t, "-", s.Measure(MeasurePercentGrade).Value)

	dist := 0.0
	for i := 0; i < 50; i++ {
		dist += 6
		s.Grade.Advance(6, dist*0.04)
	}
	assert.Equal(t, "4.0%", s.Measure(MeasurePercentGrade).Value)
}

func TestMeasureLeadTTC(t *testing.T) {
	s := newTestScene()

	assert.Equal(t, "-", s.Measure(MeasureLeadTTC).Value)

	s.LeadStatus = true
	s.LeadDRel = 30
	s.LeadVRel = -5
	ms := s.Measure(MeasureLeadTTC)
	assert.Equal(t, "6.0", ms.Value)
	assert.Equal(t, "s", ms.Unit)

	// an opening gap has no time to collision
	s.LeadVRel = 2
	assert.Equal(t, "-", s.Measure(MeasureLeadTTC).Value)

	s.LeadVRel = -0.1
	assert.Equal(t, "99+", s.Measure(MeasureLeadTTC).Value)
}

func TestMeasureGpsAccuracy(t *testing.T) {
	s := newTestScene()
	s.SatelliteCount = 12

	// no fix leaves the slot blank
	assert.Equal(t, "", s.Measure(MeasureGpsAccuracy).Value)

	s.GpsAccuracy = 0.5
	ms := s.Measure(MeasureGpsAccuracy)
	assert.Equal(t, "0.50", ms.Value)
	assert.Equal(t, "12", ms.Unit)
	assert.Equal(t, ColorWhite, ms.Color)

	s.GpsAccuracy = 1.0
	assert.Equal(t, RGBA{255, 188, 3, 200}, s.Measure(MeasureGpsAccuracy).Color)

	s.GpsAccuracy = 2.0
	assert.Equal(t, RGBA{255, 0, 0, 200}, s.Measure(MeasureGpsAccuracy).Color)

	s.GpsAccuracy = 150
	assert.Equal(t, "None", s.Measure(MeasureGpsAccuracy).Value)
}

func TestMeasureCPUTemp(t *testing.T) {
	s := newTestScene()
	s.CPUTemp = 60
	s.CPUPerc = 35
	s.ThermalStatus = log.ThermalStatus_green

	ms := s.Measure(MeasureCPUTempAndPercentC)
	assert.Equal(t, "60°C", ms.Value)
	assert.Equal(t, "35%", ms.Unit)
	assert.Equal(t, RGBA{0, 255, 0, 200}, ms.Color)

	ms = s.Measure(MeasureCPUTempF)
	assert.Equal(t, "140", ms.Value)
	assert.Equal(t, "°F", ms.Unit)
}

func TestMeasureLeadDistanceUnits(t *testing.T) {
	s := newTestScene()
	s.LeadStatus = true
	s.LeadDRel = 30

	s.IsMetric = true
	ms := s.Measure(MeasureLeadDistance)
	assert.Equal(t, "30", ms.Value)
	assert.Equal(t, "m", ms.Unit)

	s.IsMetric = false
	ms = s.Measure(MeasureLeadDistance)
	assert.Equal(t, "98", ms.Value)
	assert.Equal(t, "ft", ms.Unit)
}

func TestMeasureTableCoversAllKinds(t *testing.T) {
	for kind := MeasureKind(0); kind < NumMeasures; kind++ {
		_, ok := measureFuncs[kind]
		assert.True(t, ok, "kind %d has no formatter", kind)
	}
}

func TestMeasureUnknownKindIsBlank(t *testing.T) {
	s := newTestScene()
	assert.Equal(t, Measure{Color: ColorWhite}, s.Measure(NumMeasures))
}

func TestMeasureFollowLevel(t *testing.T) {
	s := newTestScene()
	s.DynamicFollowLevel = 1.5

	assert.Equal(t, "-", s.Measure(MeasureFollowLevel).Value)

	s.DynamicFollowActive = true
	assert.Equal(t, "1.5", s.Measure(MeasureFollowLevel).Value)
}
