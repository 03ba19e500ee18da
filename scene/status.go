package scene

import (
	"github.com/pkg/errors"

	"pfeifer.dev/scened/cereal/log"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/params"
	"pfeifer.dev/scened/utils"
)

type Status int

const (
	StatusDisengaged Status = iota
	StatusEngaged
	StatusWarning
	StatusAlert
)

func (st Status) String() string {
	switch st {
	case StatusEngaged:
		return "engaged"
	case StatusWarning:
		return "warning"
	case StatusAlert:
		return "alert"
	default:
		return "disengaged"
	}
}

// UpdateStatus derives the engagement status from the latest controls alert
// and handles the onroad/offroad transition.
func (s *Scene) UpdateStatus(bus Bus, now float64) {
	if s.Started && bus.Updated("controlsState") {
		cs, err := bus.Event("controlsState").ControlsState()
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read controls state"))
		} else {
			switch cs.AlertStatus() {
			case log.AlertStatus_userPrompt:
				s.Status = StatusWarning
			case log.AlertStatus_critical:
				s.Status = StatusAlert
			default:
				if cs.Enabled() {
					s.Status = StatusEngaged
				} else {
					s.Status = StatusDisengaged
				}
			}
		}
	}

	if s.Started != s.startedPrev {
		if s.Started {
			s.startSession(bus, now)
		}
		s.startedPrev = s.Started
	}
}

// startSession runs once on the offroad to onroad transition: re-read the
// session params, reset the grade window, and pick the active camera.
func (s *Scene) startSession(bus Bus, now float64) {
	s.Status = StatusDisengaged
	s.StartedFrame = bus.Frame()
	s.sessionInitTime = now

	s.EndToEnd = params.GetBool(params.END_TO_END_TOGGLE)
	s.LanelessMode = params.GetInt(params.LANELESS_MODE, 0)
	s.BrakePercent = params.GetInt(params.FRICTION_BRAKE_PERCENT, 0)
	s.AccelModeButton = params.GetBool(params.ACCEL_MODE_BUTTON)
	s.DynamicFollowButton = params.GetBool(params.DYNAMIC_FOLLOW_TOGGLE)
	s.SpeedLimitControl = params.GetBool(params.SPEED_LIMIT_CONTROL)
	s.ShowDebugUI = params.GetBool(params.SHOW_DEBUG_UI)

	s.Grade.Reset()

	s.MeasureNumSlots = m.Clamp(params.GetInt(params.MEASURE_NUM_SLOTS, 3), 0, MaxMeasureSlots)
	for i := range s.MeasureSlots {
		s.MeasureSlots[i] = MeasureKind(params.GetInt(params.MeasureSlotParam(i), 0))
	}

	// camera choice is fixed for the session
	s.WideCamera = params.GetBool(params.ENABLE_WIDE_CAMERA)
	if s.WideCamera {
		s.Transform = s.wideTransform
	} else {
		s.Transform = s.roadTransform
	}
}
