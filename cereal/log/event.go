// Package log holds hand-maintained wrappers over the capnp runtime for the
// subset of the bus schema that scened reads and writes. The accessor shape
// matches what capnp codegen emits so the rest of the tree reads like any
// other cereal consumer.
package log

import (
	"capnproto.org/go/capnp/v3"
)

type Event capnp.Struct

type Event_Which uint16

const (
	Event_Which_carState              Event_Which = 0
	Event_Which_controlsState         Event_Which = 1
	Event_Which_modelV2               Event_Which = 2
	Event_Which_liveCalibration       Event_Which = 3
	Event_Which_deviceState           Event_Which = 4
	Event_Which_pandaState            Event_Which = 5
	Event_Which_radarState            Event_Which = 6
	Event_Which_roadCameraState       Event_Which = 7
	Event_Which_gpsLocationExternal   Event_Which = 8
	Event_Which_ubloxGnss             Event_Which = 9
	Event_Which_liveLocationKalman    Event_Which = 10
	Event_Which_longitudinalPlan      Event_Which = 11
	Event_Which_lateralPlan           Event_Which = 12
	Event_Which_driverMonitoringState Event_Which = 13
	Event_Which_sensorEvents          Event_Which = 14
	Event_Which_sceneState            Event_Which = 15
)

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 1})
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(8))
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(80)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(80, v)
}

func (s Event) payload() (capnp.Struct, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Struct(), err
}

func (s Event) newPayload(which Event_Which, sz capnp.ObjectSize) (capnp.Struct, error) {
	capnp.Struct(s).SetUint16(8, uint16(which))
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), sz)
	if err != nil {
		return capnp.Struct{}, err
	}
	err = capnp.Struct(s).SetPtr(0, st.ToPtr())
	return st, err
}

func (s Event) CarState() (CarState, error) {
	st, err := s.payload()
	return CarState(st), err
}

func (s Event) NewCarState() (CarState, error) {
	st, err := s.newPayload(Event_Which_carState, carStateSize)
	return CarState(st), err
}

func (s Event) ControlsState() (ControlsState, error) {
	st, err := s.payload()
	return ControlsState(st), err
}

func (s Event) NewControlsState() (ControlsState, error) {
	st, err := s.newPayload(Event_Which_controlsState, controlsStateSize)
	return ControlsState(st), err
}

func (s Event) ModelV2() (ModelDataV2, error) {
	st, err := s.payload()
	return ModelDataV2(st), err
}

func (s Event) NewModelV2() (ModelDataV2, error) {
	st, err := s.newPayload(Event_Which_modelV2, modelDataV2Size)
	return ModelDataV2(st), err
}

func (s Event) LiveCalibration() (LiveCalibrationData, error) {
	st, err := s.payload()
	return LiveCalibrationData(st), err
}

func (s Event) NewLiveCalibration() (LiveCalibrationData, error) {
	st, err := s.newPayload(Event_Which_liveCalibration, liveCalibrationSize)
	return LiveCalibrationData(st), err
}

func (s Event) DeviceState() (DeviceState, error) {
	st, err := s.payload()
	return DeviceState(st), err
}

func (s Event) NewDeviceState() (DeviceState, error) {
	st, err := s.newPayload(Event_Which_deviceState, deviceStateSize)
	return DeviceState(st), err
}

func (s Event) PandaState() (PandaState, error) {
	st, err := s.payload()
	return PandaState(st), err
}

func (s Event) NewPandaState() (PandaState, error) {
	st, err := s.newPayload(Event_Which_pandaState, pandaStateSize)
	return PandaState(st), err
}

func (s Event) RadarState() (RadarState, error) {
	st, err := s.payload()
	return RadarState(st), err
}

func (s Event) NewRadarState() (RadarState, error) {
	st, err := s.newPayload(Event_Which_radarState, radarStateSize)
	return RadarState(st), err
}

func (s Event) RoadCameraState() (FrameData, error) {
	st, err := s.payload()
	return FrameData(st), err
}

func (s Event) NewRoadCameraState() (FrameData, error) {
	st, err := s.newPayload(Event_Which_roadCameraState, frameDataSize)
	return FrameData(st), err
}

func (s Event) GpsLocationExternal() (GpsLocationData, error) {
	st, err := s.payload()
	return GpsLocationData(st), err
}

func (s Event) NewGpsLocationExternal() (GpsLocationData, error) {
	st, err := s.newPayload(Event_Which_gpsLocationExternal, gpsLocationSize)
	return GpsLocationData(st), err
}

func (s Event) UbloxGnss() (UbloxGnss, error) {
	st, err := s.payload()
	return UbloxGnss(st), err
}

func (s Event) NewUbloxGnss() (UbloxGnss, error) {
	st, err := s.newPayload(Event_Which_ubloxGnss, ubloxGnssSize)
	return UbloxGnss(st), err
}

func (s Event) LiveLocationKalman() (LiveLocationKalman, error) {
	st, err := s.payload()
	return LiveLocationKalman(st), err
}

func (s Event) NewLiveLocationKalman() (LiveLocationKalman, error) {
	st, err := s.newPayload(Event_Which_liveLocationKalman, liveLocationKalmanSize)
	return LiveLocationKalman(st), err
}

func (s Event) LongitudinalPlan() (LongitudinalPlan, error) {
	st, err := s.payload()
	return LongitudinalPlan(st), err
}

func (s Event) NewLongitudinalPlan() (LongitudinalPlan, error) {
	st, err := s.newPayload(Event_Which_longitudinalPlan, longitudinalPlanSize)
	return LongitudinalPlan(st), err
}

func (s Event) LateralPlan() (LateralPlan, error) {
	st, err := s.payload()
	return LateralPlan(st), err
}

func (s Event) NewLateralPlan() (LateralPlan, error) {
	st, err := s.newPayload(Event_Which_lateralPlan, lateralPlanSize)
	return LateralPlan(st), err
}

func (s Event) DriverMonitoringState() (DriverMonitoringState, error) {
	st, err := s.payload()
	return DriverMonitoringState(st), err
}

func (s Event) NewDriverMonitoringState() (DriverMonitoringState, error) {
	st, err := s.newPayload(Event_Which_driverMonitoringState, driverMonitoringStateSize)
	return DriverMonitoringState(st), err
}

func (s Event) SensorEvents() (SensorEvents, error) {
	st, err := s.payload()
	return SensorEvents(st), err
}

func (s Event) NewSensorEvents() (SensorEvents, error) {
	st, err := s.newPayload(Event_Which_sensorEvents, sensorEventsSize)
	return SensorEvents(st), err
}

func (s Event) SceneState() (SceneState, error) {
	st, err := s.payload()
	return SceneState(st), err
}

func (s Event) NewSceneState() (SceneState, error) {
	st, err := s.newPayload(Event_Which_sceneState, sceneStateSize)
	return SceneState(st), err
}
