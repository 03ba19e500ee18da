package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

var carStateSize = capnp.ObjectSize{DataSize: 32, PointerCount: 0}

type CarState capnp.Struct

func (s CarState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CarState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CarState) AEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CarState) SetAEgo(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CarState) SteeringAngleDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CarState) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CarState) SteeringTorqueEps() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CarState) SetSteeringTorqueEps(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CarState) EngineRPM() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s CarState) SetEngineRPM(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s CarState) Pitch() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s CarState) SetPitch(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s CarState) FrictionBrakePercent() int32 {
	return int32(capnp.Struct(s).Uint32(24))
}

func (s CarState) SetFrictionBrakePercent(v int32) {
	capnp.Struct(s).SetUint32(24, uint32(v))
}

func (s CarState) SteeringPressed() bool {
	return capnp.Struct(s).Bit(224)
}

func (s CarState) SetSteeringPressed(v bool) {
	capnp.Struct(s).SetBit(224, v)
}

func (s CarState) OnePedalModeActive() bool {
	return capnp.Struct(s).Bit(225)
}

func (s CarState) SetOnePedalModeActive(v bool) {
	capnp.Struct(s).SetBit(225, v)
}

func (s CarState) CoastOnePedalModeActive() bool {
	return capnp.Struct(s).Bit(226)
}

func (s CarState) SetCoastOnePedalModeActive(v bool) {
	capnp.Struct(s).SetBit(226, v)
}

func (s CarState) GasPressed() bool {
	return capnp.Struct(s).Bit(227)
}

func (s CarState) SetGasPressed(v bool) {
	capnp.Struct(s).SetBit(227, v)
}

var controlsStateSize = capnp.ObjectSize{DataSize: 16, PointerCount: 0}

type ControlsState capnp.Struct

type AlertStatus uint16

const (
	AlertStatus_normal     AlertStatus = 0
	AlertStatus_userPrompt AlertStatus = 1
	AlertStatus_critical   AlertStatus = 2
)

func (s ControlsState) VCruise() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s ControlsState) SetVCruise(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s ControlsState) AngleErrorDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s ControlsState) SetAngleErrorDeg(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s ControlsState) AlertStatus() AlertStatus {
	return AlertStatus(capnp.Struct(s).Uint16(8))
}

func (s ControlsState) SetAlertStatus(v AlertStatus) {
	capnp.Struct(s).SetUint16(8, uint16(v))
}

func (s ControlsState) Enabled() bool {
	return capnp.Struct(s).Bit(80)
}

func (s ControlsState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(80, v)
}

func (s ControlsState) Engageable() bool {
	return capnp.Struct(s).Bit(81)
}

func (s ControlsState) SetEngageable(v bool) {
	capnp.Struct(s).SetBit(81, v)
}
