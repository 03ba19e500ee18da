package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

var sceneStateSize = capnp.ObjectSize{DataSize: 48, PointerCount: 0}

// SceneState is the outbound per-tick scene summary consumed by renderers
// and the watch dashboard.
type SceneState capnp.Struct

func (s SceneState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s SceneState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s SceneState) SteeringAngleDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s SceneState) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s SceneState) PercentGrade() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s SceneState) SetPercentGrade(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s SceneState) ScreenDimFade() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s SceneState) SetScreenDimFade(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s SceneState) OnePedalFade() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(16))
}

func (s SceneState) SetOnePedalFade(v float32) {
	capnp.Struct(s).SetUint32(16, math.Float32bits(v))
}

func (s SceneState) BrakeIndicatorAlpha() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(20))
}

func (s SceneState) SetBrakeIndicatorAlpha(v float32) {
	capnp.Struct(s).SetUint32(20, math.Float32bits(v))
}

func (s SceneState) DynamicFollowLevel() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s SceneState) SetDynamicFollowLevel(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s SceneState) GpsAccuracy() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s SceneState) SetGpsAccuracy(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

func (s SceneState) Status() uint16 {
	return capnp.Struct(s).Uint16(32)
}

func (s SceneState) SetStatus(v uint16) {
	capnp.Struct(s).SetUint16(32, v)
}

func (s SceneState) SatelliteCount() uint16 {
	return capnp.Struct(s).Uint16(34)
}

func (s SceneState) SetSatelliteCount(v uint16) {
	capnp.Struct(s).SetUint16(34, v)
}

func (s SceneState) TrackVertexCount() uint16 {
	return capnp.Struct(s).Uint16(36)
}

func (s SceneState) SetTrackVertexCount(v uint16) {
	capnp.Struct(s).SetUint16(36, v)
}

func (s SceneState) WorldObjectsVisible() bool {
	return capnp.Struct(s).Bit(304)
}

func (s SceneState) SetWorldObjectsVisible(v bool) {
	capnp.Struct(s).SetBit(304, v)
}

func (s SceneState) Engaged() bool {
	return capnp.Struct(s).Bit(305)
}

func (s SceneState) SetEngaged(v bool) {
	capnp.Struct(s).SetBit(305, v)
}

func (s SceneState) GpsOK() bool {
	return capnp.Struct(s).Bit(306)
}

func (s SceneState) SetGpsOK(v bool) {
	capnp.Struct(s).SetBit(306, v)
}

func (s SceneState) Started() bool {
	return capnp.Struct(s).Bit(307)
}

func (s SceneState) SetStarted(v bool) {
	capnp.Struct(s).SetBit(307, v)
}

func (s SceneState) Frame() uint64 {
	return capnp.Struct(s).Uint64(40)
}

func (s SceneState) SetFrame(v uint64) {
	capnp.Struct(s).SetUint64(40, v)
}
