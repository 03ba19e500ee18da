package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

// TrajectorySize is the number of samples in every model path/lane/edge line.
const TrajectorySize = 33

var (
	modelDataV2Size = capnp.ObjectSize{DataSize: 0, PointerCount: 11}
	xyztDataSize    = capnp.ObjectSize{DataSize: 0, PointerCount: 4}
	leadDataV3Size  = capnp.ObjectSize{DataSize: 8, PointerCount: 2}
)

// ModelDataV2 pointer layout: position, laneLine0-3, laneLineProbs,
// roadEdge0-1, roadEdgeStds, leadOne, leadTwo.
type ModelDataV2 capnp.Struct

func (s ModelDataV2) Position() (XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return XYZTData(p.Struct()), err
}

func (s ModelDataV2) NewPosition() (XYZTData, error) {
	return s.newXYZT(0)
}

func (s ModelDataV2) LaneLine(i int) (XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(uint16(1 + i))
	return XYZTData(p.Struct()), err
}

func (s ModelDataV2) NewLaneLine(i int) (XYZTData, error) {
	return s.newXYZT(uint16(1 + i))
}

func (s ModelDataV2) LaneLineProbs() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(5)
	return capnp.Float32List(p.List()), err
}

func (s ModelDataV2) NewLaneLineProbs(n int32) (capnp.Float32List, error) {
	return s.newFloatList(5, n)
}

func (s ModelDataV2) RoadEdge(i int) (XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(uint16(6 + i))
	return XYZTData(p.Struct()), err
}

func (s ModelDataV2) NewRoadEdge(i int) (XYZTData, error) {
	return s.newXYZT(uint16(6 + i))
}

func (s ModelDataV2) RoadEdgeStds() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(8)
	return capnp.Float32List(p.List()), err
}

func (s ModelDataV2) NewRoadEdgeStds(n int32) (capnp.Float32List, error) {
	return s.newFloatList(8, n)
}

func (s ModelDataV2) LeadOne() (LeadDataV3, error) {
	p, err := capnp.Struct(s).Ptr(9)
	return LeadDataV3(p.Struct()), err
}

func (s ModelDataV2) NewLeadOne() (LeadDataV3, error) {
	return s.newLead(9)
}

func (s ModelDataV2) LeadTwo() (LeadDataV3, error) {
	p, err := capnp.Struct(s).Ptr(10)
	return LeadDataV3(p.Struct()), err
}

func (s ModelDataV2) NewLeadTwo() (LeadDataV3, error) {
	return s.newLead(10)
}

func (s ModelDataV2) newXYZT(i uint16) (XYZTData, error) {
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), xyztDataSize)
	if err != nil {
		return XYZTData{}, err
	}
	err = capnp.Struct(s).SetPtr(i, st.ToPtr())
	return XYZTData(st), err
}

func (s ModelDataV2) newLead(i uint16) (LeadDataV3, error) {
	st, err := capnp.NewStruct(capnp.Struct(s).Segment(), leadDataV3Size)
	if err != nil {
		return LeadDataV3{}, err
	}
	err = capnp.Struct(s).SetPtr(i, st.ToPtr())
	return LeadDataV3(st), err
}

func (s ModelDataV2) newFloatList(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, l.ToPtr())
	return l, err
}

// XYZTData is one model line: per-sample x/y/z coordinates plus timestamps.
type XYZTData capnp.Struct

func (s XYZTData) X() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) Y() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) Z() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) T() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) NewX(n int32) (capnp.Float32List, error) { return s.newList(0, n) }
func (s XYZTData) NewY(n int32) (capnp.Float32List, error) { return s.newList(1, n) }
func (s XYZTData) NewZ(n int32) (capnp.Float32List, error) { return s.newList(2, n) }
func (s XYZTData) NewT(n int32) (capnp.Float32List, error) { return s.newList(3, n) }

func (s XYZTData) newList(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, l.ToPtr())
	return l, err
}

// LeadDataV3 is the model's lead estimate: probability plus predicted
// x/y tracks.
type LeadDataV3 capnp.Struct

func (s LeadDataV3) Prob() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s LeadDataV3) SetProb(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s LeadDataV3) X() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s LeadDataV3) Y() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s LeadDataV3) NewX(n int32) (capnp.Float32List, error) { return s.newList(0, n) }
func (s LeadDataV3) NewY(n int32) (capnp.Float32List, error) { return s.newList(1, n) }

func (s LeadDataV3) newList(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, l.ToPtr())
	return l, err
}
