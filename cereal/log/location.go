package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

var (
	liveCalibrationSize    = capnp.ObjectSize{DataSize: 8, PointerCount: 1}
	gpsLocationSize        = capnp.ObjectSize{DataSize: 40, PointerCount: 0}
	ubloxGnssSize          = capnp.ObjectSize{DataSize: 8, PointerCount: 1}
	measurementReportSize  = capnp.ObjectSize{DataSize: 8, PointerCount: 0}
	liveLocationKalmanSize = capnp.ObjectSize{DataSize: 8, PointerCount: 1}
	measurementSize        = capnp.ObjectSize{DataSize: 0, PointerCount: 1}
)

type LiveCalibrationData capnp.Struct

func (s LiveCalibrationData) CalStatus() uint8 {
	return capnp.Struct(s).Uint8(0)
}

func (s LiveCalibrationData) SetCalStatus(v uint8) {
	capnp.Struct(s).SetUint8(0, v)
}

// RpyCalib is the roll/pitch/yaw triple of the device-from-calibrated
// rotation.
func (s LiveCalibrationData) RpyCalib() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s LiveCalibrationData) NewRpyCalib(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

type GpsLocationData capnp.Struct

func (s GpsLocationData) Latitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s GpsLocationData) SetLatitude(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s GpsLocationData) Longitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s GpsLocationData) SetLongitude(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s GpsLocationData) Altitude() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s GpsLocationData) SetAltitude(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

func (s GpsLocationData) Accuracy() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(24))
}

func (s GpsLocationData) SetAccuracy(v float32) {
	capnp.Struct(s).SetUint32(24, math.Float32bits(v))
}

func (s GpsLocationData) Speed() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(28))
}

func (s GpsLocationData) SetSpeed(v float32) {
	capnp.Struct(s).SetUint32(28, math.Float32bits(v))
}

type UbloxGnss capnp.Struct

type UbloxGnss_Which uint16

const (
	UbloxGnss_Which_measurementReport UbloxGnss_Which = 0
)

func (s UbloxGnss) Which() UbloxGnss_Which {
	return UbloxGnss_Which(capnp.Struct(s).Uint16(0))
}

func (s UbloxGnss) MeasurementReport() (MeasurementReport, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return MeasurementReport(p.Struct()), err
}

func (s UbloxGnss) NewMeasurementReport() (MeasurementReport, error) {
	capnp.Struct(s).SetUint16(0, uint16(UbloxGnss_Which_measurementReport))
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), measurementReportSize)
	if err != nil {
		return MeasurementReport{}, err
	}
	err = capnp.Struct(s).SetPtr(0, st.ToPtr())
	return MeasurementReport(st), err
}

type MeasurementReport capnp.Struct

func (s MeasurementReport) NumMeas() uint8 {
	return capnp.Struct(s).Uint8(0)
}

func (s MeasurementReport) SetNumMeas(v uint8) {
	capnp.Struct(s).SetUint8(0, v)
}

type LiveLocationKalman capnp.Struct

func (s LiveLocationKalman) GpsOK() bool {
	return capnp.Struct(s).Bit(0)
}

func (s LiveLocationKalman) SetGpsOK(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s LiveLocationKalman) AccelerationCalibrated() (Measurement, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Measurement(p.Struct()), err
}

func (s LiveLocationKalman) NewAccelerationCalibrated() (Measurement, error) {
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), measurementSize)
	if err != nil {
		return Measurement{}, err
	}
	err = capnp.Struct(s).SetPtr(0, st.ToPtr())
	return Measurement(st), err
}

type Measurement capnp.Struct

func (s Measurement) Value() (capnp.Float64List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float64List(p.List()), err
}

func (s Measurement) NewValue(n int32) (capnp.Float64List, error) {
	l, err := capnp.NewFloat64List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float64List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}
