package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

var (
	longitudinalPlanSize      = capnp.ObjectSize{DataSize: 40, PointerCount: 0}
	lateralPlanSize           = capnp.ObjectSize{DataSize: 24, PointerCount: 0}
	driverMonitoringStateSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}
	radarStateSize            = capnp.ObjectSize{DataSize: 0, PointerCount: 2}
	leadDataSize              = capnp.ObjectSize{DataSize: 16, PointerCount: 0}
)

type VisionTurnControllerState uint16

const (
	VisionTurnControllerState_disabled VisionTurnControllerState = 0
	VisionTurnControllerState_entering VisionTurnControllerState = 1
	VisionTurnControllerState_turning  VisionTurnControllerState = 2
	VisionTurnControllerState_leaving  VisionTurnControllerState = 3
)

type LongitudinalPlan capnp.Struct

func (s LongitudinalPlan) DesiredFollowDistance() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s LongitudinalPlan) SetDesiredFollowDistance(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s LongitudinalPlan) LeadDistCost() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s LongitudinalPlan) SetLeadDistCost(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s LongitudinalPlan) LeadAccelCost() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s LongitudinalPlan) SetLeadAccelCost(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s LongitudinalPlan) StoppingDistance() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s LongitudinalPlan) SetStoppingDistance(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s LongitudinalPlan) DynamicFollowLevel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s LongitudinalPlan) SetDynamicFollowLevel(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s LongitudinalPlan) VisionCurrentLateralAcceleration() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s LongitudinalPlan) SetVisionCurrentLateralAcceleration(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s LongitudinalPlan) VisionMaxVForCurrentCurvature() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s LongitudinalPlan) SetVisionMaxVForCurrentCurvature(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s LongitudinalPlan) VisionMaxPredictedLateralAcceleration() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s LongitudinalPlan) SetVisionMaxPredictedLateralAcceleration(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

func (s LongitudinalPlan) VisionTurnControllerState() VisionTurnControllerState {
	return VisionTurnControllerState(capnp.Struct(s).Uint16(32))
}

func (s LongitudinalPlan) SetVisionTurnControllerState(v VisionTurnControllerState) {
	capnp.Struct(s).SetUint16(32, uint16(v))
}

type LateralPlan capnp.Struct

func (s LateralPlan) LaneWidth() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s LateralPlan) SetLaneWidth(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s LateralPlan) DProb() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s LateralPlan) SetDProb(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s LateralPlan) LProb() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s LateralPlan) SetLProb(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s LateralPlan) RProb() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s LateralPlan) SetRProb(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s LateralPlan) LanelessMode() bool {
	return capnp.Struct(s).Bit(128)
}

func (s LateralPlan) SetLanelessMode(v bool) {
	capnp.Struct(s).SetBit(128, v)
}

type DriverMonitoringState capnp.Struct

func (s DriverMonitoringState) IsActiveMode() bool {
	return capnp.Struct(s).Bit(0)
}

func (s DriverMonitoringState) SetIsActiveMode(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

type RadarState capnp.Struct

func (s RadarState) LeadOne() (LeadData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return LeadData(p.Struct()), err
}

func (s RadarState) NewLeadOne() (LeadData, error) {
	return s.newLead(0)
}

func (s RadarState) LeadTwo() (LeadData, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return LeadData(p.Struct()), err
}

func (s RadarState) NewLeadTwo() (LeadData, error) {
	return s.newLead(1)
}

func (s RadarState) newLead(i uint16) (LeadData, error) {
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), leadDataSize)
	if err != nil {
		return LeadData{}, err
	}
	err = capnp.Struct(s).SetPtr(i, st.ToPtr())
	return LeadData(st), err
}

type LeadData capnp.Struct

func (s LeadData) DRel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s LeadData) SetDRel(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s LeadData) VRel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s LeadData) SetVRel(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s LeadData) VLead() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s LeadData) SetVLead(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s LeadData) Status() bool {
	return capnp.Struct(s).Bit(96)
}

func (s LeadData) SetStatus(v bool) {
	capnp.Struct(s).SetBit(96, v)
}
