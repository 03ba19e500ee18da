package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

var (
	deviceStateSize  = capnp.ObjectSize{DataSize: 24, PointerCount: 2}
	pandaStateSize   = capnp.ObjectSize{DataSize: 8, PointerCount: 0}
	frameDataSize    = capnp.ObjectSize{DataSize: 8, PointerCount: 0}
	sensorEventsSize = capnp.ObjectSize{DataSize: 0, PointerCount: 2}
	sensorVecSize    = capnp.ObjectSize{DataSize: 0, PointerCount: 1}
)

type ThermalStatus uint16

const (
	ThermalStatus_green  ThermalStatus = 0
	ThermalStatus_yellow ThermalStatus = 1
	ThermalStatus_red    ThermalStatus = 2
	ThermalStatus_danger ThermalStatus = 3
)

type DeviceState capnp.Struct

func (s DeviceState) Started() bool {
	return capnp.Struct(s).Bit(0)
}

func (s DeviceState) SetStarted(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s DeviceState) ThermalStatus() ThermalStatus {
	return ThermalStatus(capnp.Struct(s).Uint16(2))
}

func (s DeviceState) SetThermalStatus(v ThermalStatus) {
	capnp.Struct(s).SetUint16(2, uint16(v))
}

func (s DeviceState) MemoryTempC() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s DeviceState) SetMemoryTempC(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s DeviceState) AmbientTempC() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s DeviceState) SetAmbientTempC(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s DeviceState) FreeSpacePercent() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s DeviceState) SetFreeSpacePercent(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s DeviceState) FanSpeedPercentDesired() uint16 {
	return capnp.Struct(s).Uint16(16)
}

func (s DeviceState) SetFanSpeedPercentDesired(v uint16) {
	capnp.Struct(s).SetUint16(16, v)
}

func (s DeviceState) MemoryUsagePercent() int8 {
	return int8(capnp.Struct(s).Uint8(18))
}

func (s DeviceState) SetMemoryUsagePercent(v int8) {
	capnp.Struct(s).SetUint8(18, uint8(v))
}

func (s DeviceState) CpuTempC() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s DeviceState) NewCpuTempC(n int32) (capnp.Float32List, error) {
	return s.newList(0, n)
}

func (s DeviceState) CpuUsagePercent() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s DeviceState) NewCpuUsagePercent(n int32) (capnp.Float32List, error) {
	return s.newList(1, n)
}

func (s DeviceState) newList(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, l.ToPtr())
	return l, err
}

type PandaType uint16

const (
	PandaType_unknown   PandaType = 0
	PandaType_whitePanda PandaType = 1
	PandaType_greyPanda  PandaType = 2
	PandaType_blackPanda PandaType = 3
	PandaType_uno        PandaType = 4
	PandaType_dos        PandaType = 5
)

type PandaState capnp.Struct

func (s PandaState) PandaType() PandaType {
	return PandaType(capnp.Struct(s).Uint16(0))
}

func (s PandaState) SetPandaType(v PandaType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s PandaState) IgnitionLine() bool {
	return capnp.Struct(s).Bit(16)
}

func (s PandaState) SetIgnitionLine(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s PandaState) IgnitionCan() bool {
	return capnp.Struct(s).Bit(17)
}

func (s PandaState) SetIgnitionCan(v bool) {
	capnp.Struct(s).SetBit(17, v)
}

// FrameData carries the road camera exposure metadata used for auto
// brightness.
type FrameData capnp.Struct

func (s FrameData) Gain() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s FrameData) SetGain(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s FrameData) IntegLines() int32 {
	return int32(capnp.Struct(s).Uint32(4))
}

func (s FrameData) SetIntegLines(v int32) {
	capnp.Struct(s).SetUint32(4, uint32(v))
}

// SensorEvents carries the accelerometer and uncalibrated gyro vectors from
// the latest sensor batch. Absent sensors leave their pointer null.
type SensorEvents capnp.Struct

func (s SensorEvents) HasAcceleration() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s SensorEvents) Acceleration() (SensorVec, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return SensorVec(p.Struct()), err
}

func (s SensorEvents) NewAcceleration() (SensorVec, error) {
	return s.newVec(0)
}

func (s SensorEvents) HasGyroUncalibrated() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s SensorEvents) GyroUncalibrated() (SensorVec, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return SensorVec(p.Struct()), err
}

func (s SensorEvents) NewGyroUncalibrated() (SensorVec, error) {
	return s.newVec(1)
}

func (s SensorEvents) newVec(i uint16) (SensorVec, error) {
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), sensorVecSize)
	if err != nil {
		return SensorVec{}, err
	}
	err = capnp.Struct(s).SetPtr(i, st.ToPtr())
	return SensorVec(st), err
}

type SensorVec capnp.Struct

func (s SensorVec) V() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s SensorVec) NewV(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}
