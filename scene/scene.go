// Package scene fuses the per-topic bus telemetry into one Scene snapshot
// per tick: projected model geometry, engagement status, animated indicator
// values, and the rolling percent grade. The Scene has a single writer, the
// main loop, which publishes a summary after every Update.
package scene

import (
	"pfeifer.dev/scened/anim"
	"pfeifer.dev/scened/cereal/log"
	"pfeifer.dev/scened/config"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/settings"
)

// MaxMeasureSlots is the number of configurable measure slots.
const MaxMeasureSlots = 10

// gradeMinDist is the distance the grade window must cover before the GPS
// grade is trusted.
const gradeMinDist = 200.0

type Vertex struct {
	X, Y float32
}

// LineVertices is one projected model line as a closed polygon: the forward
// walk along one side plus the reverse walk along the other.
type LineVertices struct {
	V   [2 * log.TrajectorySize]Vertex
	Cnt int
}

type Scene struct {
	Frame uint64

	// projection
	ViewFromCalib       m.Mat3
	WorldObjectsVisible bool
	Transform           Transform
	WideCamera          bool
	roadTransform       Transform
	wideTransform       Transform

	// projected geometry
	TrackVertices    LineVertices
	LaneLineVertices [4]LineVertices
	RoadEdgeVertices [2]LineVertices
	LeadVertices     [2]Vertex
	LaneLineProbs    [4]float32
	RoadEdgeStds     [2]float32

	// session
	Started      bool
	StartedFrame uint64
	Ignition     bool
	PandaType    log.PandaType
	Status       Status

	// car / controls
	Engaged            bool
	Engageable         bool
	DmActive           bool
	VEgo               float32
	AEgo               float32
	VCruise            float32
	SteeringAngleDeg   float32
	SteeringAngleDes   float32
	SteeringTorqueEps  float32
	SteerOverride      bool
	EngineRPM          int
	BrakePercent       int
	OnePedalCarActive  bool
	PercentGradeDevice float32

	// plans
	DesiredFollowDistance float32
	FollowDistanceCost    float32
	FollowAccelCost       float32
	StoppingDistance      float32
	DynamicFollowLevel    float32
	VisionCurLatAccel     float32
	VisionMaxVForCurCurv  float32
	VisionMaxPredLatAccel float32
	VisionTurnState       log.VisionTurnControllerState
	LaneWidth             float32
	DProb, LProb, RProb   float32
	LanelessModeStatus    bool

	// radar lead
	LeadStatus bool
	LeadDRel   float32
	LeadVRel   float32
	LeadV      float32

	// device
	CPUTemp       float32
	CPUPerc       int
	MemoryTemp    float32
	AmbientTemp   float32
	FreeSpace     float32
	FanSpeed      int
	MemoryUsage   int
	ThermalStatus log.ThermalStatus
	LightSensor   float32
	AccelSensor   float32
	GyroSensor    float32

	// gps
	SatelliteCount int
	GpsOK          bool
	GpsAccuracy    float32
	Altitude       float64
	LatAccel       float32
	Grade          *m.GradeTracker

	// animations
	ScreenDimModes    [3]float64
	ScreenDimMode     int
	ScreenDimModeCur  int
	screenDimModeLast int
	ScreenDimFade     anim.Fade
	OnePedalFade      anim.Fade
	BrakeFade         anim.Fade
	FollowFade        anim.Fade

	// param toggles
	IsMetric              bool
	DisableDisengageOnGas bool
	OnePedalModeEnabled   bool
	OnePedalEngageOnGas   bool
	OnePedalPauseSteering bool
	SpeedLimitControl     bool
	AccelModeButton       bool
	AccelMode             int
	DynamicFollowButton   bool
	DynamicFollowActive   bool
	EndToEnd              bool
	LanelessMode          int
	ShowDebugUI           bool

	MeasureNumSlots int
	MeasureSlots    [MaxMeasureSlots]MeasureKind

	sessionInitTime float64
	paramsCheckLast float64
	gradeLastT      float64
	startedPrev     bool
}

func NewScene(cfg config.DeviceConfig) *Scene {
	s := &Scene{
		roadTransform: NewTransform(cfg.RoadCamera, cfg.Display, false),
		wideTransform: NewTransform(cfg.WideCamera, cfg.Display, true),
		Grade: m.NewGradeTracker(settings.Settings.GradeNumSamples,
			settings.Settings.GradeLenStep),
		ScreenDimModes: [3]float64{0.01, 0.5, 1.0},
		PandaType:      log.PandaType_unknown,
	}
	if !cfg.HasWide {
		s.wideTransform = s.roadTransform
	}
	s.Transform = s.roadTransform

	dimMax := len(s.ScreenDimModes) - 1
	s.ScreenDimMode = dimMax
	s.ScreenDimModeCur = dimMax
	s.screenDimModeLast = dimMax
	s.ScreenDimFade = anim.NewFade(s.ScreenDimModes[dimMax], 0, 1, 1)

	indicatorStep := 1 / settings.Settings.IndicatorFadeDur
	s.OnePedalFade = anim.NewFade(-1, -1, 1, indicatorStep)
	s.BrakeFade = anim.NewFade(0, 0, 1, indicatorStep)
	s.FollowFade = anim.NewFade(0, 0, 2, 1/settings.Settings.DynamicFollowFadeDur)

	return s
}

// GradeValid reports whether the rolling GPS grade has enough history to be
// shown: a full sample window covering the minimum distance, with a live fix.
func (s *Scene) GradeValid() bool {
	return s.Grade.Rolled() && s.Grade.Distance() >= gradeMinDist && s.GpsAccuracy != 0
}
