package scene

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"

	"pfeifer.dev/scened/cereal/log"
	m "pfeifer.dev/scened/math"
	"pfeifer.dev/scened/settings"
	"pfeifer.dev/scened/utils"
)

const (
	trackYOffset    = 0.5
	trackZOffset    = 1.22
	laneLineYScale  = 0.025
	roadEdgeYOffset = 0.025
)

// pathLengthIdx returns the index of the last line sample closer than dist,
// never past the trajectory buffer capacity.
func pathLengthIdx(lineX capnp.Float32List, dist float32) int {
	maxIdx := 0
	for i := 0; i < lineX.Len() && i < log.TrajectorySize && lineX.At(i) < dist; i++ {
		maxIdx = i
	}
	return maxIdx
}

func lineLists(line log.XYZTData) (x, y, z capnp.Float32List, err error) {
	if x, err = line.X(); err != nil {
		return
	}
	if y, err = line.Y(); err != nil {
		return
	}
	z, err = line.Z()
	return
}

// updateLineData projects one model line into a closed screen-space polygon:
// forward along the line pulled in by yOff, then back out along the other
// side. Off-screen vertices are written but not counted.
func (s *Scene) updateLineData(line log.XYZTData, yOff, zOff float32, pvd *LineVertices, maxIdx int) {
	lineX, lineY, lineZ, err := lineLists(line)
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read model line"))
		pvd.Cnt = 0
		return
	}
	if maxIdx >= lineX.Len() {
		maxIdx = lineX.Len() - 1
	}
	// the vertex buffer holds 2*TrajectorySize entries, so an oversized
	// model line must not walk past the trajectory capacity
	if maxIdx >= log.TrajectorySize {
		maxIdx = log.TrajectorySize - 1
	}

	cnt := 0
	for i := 0; i <= maxIdx; i++ {
		pt := m.Vec3{X: lineX.At(i), Y: lineY.At(i) - yOff, Z: lineZ.At(i) + zOff}
		if s.Transform.Project(pt, s.ViewFromCalib, &pvd.V[cnt]) {
			cnt++
		}
	}
	for i := maxIdx; i >= 0; i-- {
		pt := m.Vec3{X: lineX.At(i), Y: lineY.At(i) + yOff, Z: lineZ.At(i) + zOff}
		if s.Transform.Project(pt, s.ViewFromCalib, &pvd.V[cnt]) {
			cnt++
		}
	}
	pvd.Cnt = cnt
}

// updateModel rebuilds the projected lane lines, road edges, and driving
// track from a fresh model message. The visible track is clamped to the
// drawable range and tightened onto a high-probability lead.
func (s *Scene) updateModel(model log.ModelDataV2) {
	position, err := model.Position()
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read model position"))
		return
	}
	posX, err := position.X()
	if err != nil || posX.Len() == 0 {
		utils.Logde(errors.Wrap(err, "could not read model position x"))
		return
	}
	maxDistance := m.Clamp(posX.At(posX.Len()-1),
		settings.Settings.MinDrawDistance, settings.Settings.MaxDrawDistance)

	laneLineProbs, err := model.LaneLineProbs()
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read lane line probs"))
		return
	}
	firstLane, err := model.LaneLine(0)
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read lane line"))
		return
	}
	firstLaneX, err := firstLane.X()
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read lane line x"))
		return
	}
	maxIdx := pathLengthIdx(firstLaneX, maxDistance)
	for i := range s.LaneLineVertices {
		if i < laneLineProbs.Len() {
			s.LaneLineProbs[i] = laneLineProbs.At(i)
		}
		line, err := model.LaneLine(i)
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read lane line"))
			continue
		}
		s.updateLineData(line, laneLineYScale*s.LaneLineProbs[i], 0, &s.LaneLineVertices[i], maxIdx)
	}

	roadEdgeStds, err := model.RoadEdgeStds()
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read road edge stds"))
		return
	}
	for i := range s.RoadEdgeVertices {
		if i < roadEdgeStds.Len() {
			s.RoadEdgeStds[i] = roadEdgeStds.At(i)
		}
		edge, err := model.RoadEdge(i)
		if err != nil {
			utils.Logde(errors.Wrap(err, "could not read road edge"))
			continue
		}
		s.updateLineData(edge, roadEdgeYOffset, 0, &s.RoadEdgeVertices[i], maxIdx)
	}

	leadOne, err := model.LeadOne()
	if err == nil && leadOne.Prob() > 0.5 {
		if leadX, err := leadOne.X(); err == nil && leadX.Len() > 0 {
			leadD := leadX.At(0) * 2
			maxDistance = m.Clamp(leadD-min(leadD*0.35, 10), 0, maxDistance)
		}
	}
	maxIdx = pathLengthIdx(posX, maxDistance)
	s.updateLineData(position, trackYOffset, trackZOffset, &s.TrackVertices, maxIdx)
}

// updateLeads places a marker vertex for each lead the model trusts, pinned
// to the track height at the lead's distance.
func (s *Scene) updateLeads(model log.ModelDataV2) {
	position, err := model.Position()
	if err != nil {
		utils.Logde(errors.Wrap(err, "could not read model position"))
		return
	}
	posX, err := position.X()
	if err != nil {
		return
	}
	posZ, err := position.Z()
	if err != nil {
		return
	}

	leads := [2]func() (log.LeadDataV3, error){model.LeadOne, model.LeadTwo}
	for i, get := range leads {
		lead, err := get()
		if err != nil || lead.Prob() <= 0.5 {
			continue
		}
		leadX, err := lead.X()
		if err != nil || leadX.Len() == 0 {
			continue
		}
		leadY, err := lead.Y()
		if err != nil || leadY.Len() == 0 {
			continue
		}
		idx := pathLengthIdx(posX, leadX.At(0))
		var z float32
		if idx < posZ.Len() {
			z = posZ.At(idx)
		}
		pt := m.Vec3{X: leadX.At(0), Y: leadY.At(0), Z: z + trackZOffset}
		s.Transform.Project(pt, s.ViewFromCalib, &s.LeadVertices[i])
	}
}
