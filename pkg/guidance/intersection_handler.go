package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

// perfectlyStraight. tolerance for a turn angle that is straight up to
// floating point noise.
const perfectlyStraight = 1e-9

// IntersectionHandler carries the shared turn utilities every intersection
// handler builds on: basic turn typing, the obvious-turn oracle, fork and
// trivial assignment. It holds the external collaborators read-only.
type IntersectionHandler struct {
	graph       Graph
	suffixTable *SuffixTable
}

func NewIntersectionHandler(graph Graph, suffixTable *SuffixTable) *IntersectionHandler {
	return &IntersectionHandler{
		graph:       graph,
		suffixTable: suffixTable,
	}
}

func (h *IntersectionHandler) sameName(edgeA, edgeB datastructure.Index) bool {
	nameA := h.graph.GetStreetName(edgeA)
	nameB := h.graph.GetStreetName(edgeB)
	if nameA == "" || nameB == "" {
		return false
	}
	return !RequiresNameAnnounced(nameA, nameB, h.suffixTable)
}

// findBasicTurnType. the coarse semantic category of leaving viaEdge onto
// road: ramps become OnRamp, staying on the same street is Continue,
// everything else is a plain turn.
func (h *IntersectionHandler) findBasicTurnType(viaEdge datastructure.Index,
	road *datastructure.ConnectedRoad) datastructure.TurnType {
	outData := h.graph.GetEdgeData(road.GetEid())

	if outData.GetRoadClassification().IsRampClass() {
		return datastructure.TurnOnRamp
	}

	if h.sameName(viaEdge, road.GetEid()) {
		return datastructure.TurnContinue
	}

	return datastructure.TurnBasic
}

// getInstructionForObvious. the instruction for a road that is the
// unambiguous continuation of the via edge.
func (h *IntersectionHandler) getInstructionForObvious(numRoads int, viaEdge datastructure.Index,
	isThroughStreet bool, road *datastructure.ConnectedRoad) datastructure.TurnInstruction {
	turnType := h.findBasicTurnType(viaEdge, road)
	direction := geo.GetTurnDirection(road.GetAngle())

	if turnType == datastructure.TurnOnRamp {
		return datastructure.NewTurnInstruction(datastructure.TurnOnRamp, direction)
	}

	if geo.AngularDeviation(road.GetAngle(), 0) < 0.01 {
		return datastructure.NewTurnInstruction(datastructure.TurnContinue, datastructure.UTurn)
	}

	if turnType == datastructure.TurnBasic {
		viaName := h.graph.GetStreetName(viaEdge)
		roadName := h.graph.GetStreetName(road.GetEid())
		if viaName != "" && roadName != "" &&
			RequiresNameAnnounced(viaName, roadName, h.suffixTable) {
			// obvious continuation onto a road with a new name
			return datastructure.NewTurnInstruction(datastructure.TurnNewName, direction)
		}
		return datastructure.NewTurnInstruction(datastructure.TurnSuppressed, direction)
	}

	if isThroughStreet {
		// passing by a side road of the street we stay on
		return datastructure.NewTurnInstruction(datastructure.TurnSuppressed, direction)
	}
	if numRoads > 2 {
		return datastructure.NewTurnInstruction(datastructure.TurnContinue, direction)
	}
	return datastructure.NewTurnInstruction(datastructure.TurnNoTurn, direction)
}

/*
findObviousTurn. index of the one clearly dominant outgoing road, or 0 if
none dominates. A road dominates when it continues the via street close to
straight, or when every rival is at least DISTINCTION_RATIO farther from
straight or beaten by road class.
*/
func (h *IntersectionHandler) findObviousTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) int {
	if len(intersection) == 1 {
		return 0
	}
	if len(intersection) == 2 {
		return 1
	}

	viaClass := h.graph.GetEdgeData(viaEdge).GetRoadClassification()
	viaName := h.graph.GetStreetName(viaEdge)

	bestOption := 0
	bestOptionDeviation := 180.0
	bestContinue := 0
	bestContinueDeviation := 180.0
	numContinueCandidates := 0

	for i := 1; i < len(intersection); i++ {
		road := &intersection[i]
		if !road.IsEntryAllowed() {
			continue
		}
		deviation := geo.DeviationFromStraight(road.GetAngle())
		if deviation < bestOptionDeviation {
			bestOption = i
			bestOptionDeviation = deviation
		}
		if viaName != "" && h.sameName(viaEdge, road.GetEid()) {
			numContinueCandidates++
			if deviation < bestContinueDeviation {
				bestContinue = i
				bestContinueDeviation = deviation
			}
		}
	}

	if bestOption == 0 {
		return 0
	}

	// staying on the same street wins when the continuation is essentially
	// straight and no second road shares the name
	if bestContinue != 0 && numContinueCandidates == 1 &&
		bestContinueDeviation < pkg.FUZZY_ANGLE_DIFFERENCE {
		return bestContinue
	}

	if bestOptionDeviation > pkg.NARROW_TURN_ANGLE {
		return 0
	}

	bestClass := h.graph.GetEdgeData(intersection[bestOption].GetEid()).GetRoadClassification()
	for i := 1; i < len(intersection); i++ {
		if i == bestOption || !intersection[i].IsEntryAllowed() {
			continue
		}
		otherClass := h.graph.GetEdgeData(intersection[i].GetEid()).GetRoadClassification()
		if datastructure.ObviousByRoadClass(viaClass, otherClass, bestClass) {
			// a rival beats the candidate by class
			return 0
		}
		if datastructure.ObviousByRoadClass(viaClass, bestClass, otherClass) {
			continue
		}
		otherDeviation := geo.DeviationFromStraight(intersection[i].GetAngle())
		if otherDeviation <= pkg.DISTINCTION_RATIO*bestOptionDeviation {
			return 0
		}
	}
	return bestOption
}

// isThroughStreet. does the road at index continue past the intersection on
// the far side, i.e. is there a road with the same name roughly opposite?
func (h *IntersectionHandler) isThroughStreet(index int, intersection datastructure.Intersection) bool {
	name := h.graph.GetStreetName(intersection[index].GetEid())
	if name == "" {
		return false
	}
	for i := range intersection {
		if i == index || intersection[i].GetEid() == intersection[index].GetEid() {
			continue
		}
		if h.sameName(intersection[index].GetEid(), intersection[i].GetEid()) &&
			geo.AngularDeviation(intersection[i].GetAngle(), intersection[index].GetAngle()) >
				pkg.STRAIGHT_ANGLE-pkg.NARROW_TURN_ANGLE {
			return true
		}
	}
	return false
}

// assignFork marks a two-way fork. A low-priority side never forks with a
// mainline side: the mainline becomes the obvious continuation instead.
func (h *IntersectionHandler) assignFork(viaEdge datastructure.Index,
	left, right *datastructure.ConnectedRoad) {
	lowPriorityLeft := h.graph.GetEdgeData(left.GetEid()).GetRoadClassification().IsLowPriorityRoadClass()
	lowPriorityRight := h.graph.GetEdgeData(right.GetEid()).GetRoadClassification().IsLowPriorityRoadClass()

	switch {
	case lowPriorityRight && !lowPriorityLeft:
		left.SetInstruction(h.getInstructionForObvious(3, viaEdge, false, left))
		right.SetInstruction(datastructure.NewTurnInstruction(
			h.findBasicTurnType(viaEdge, right), datastructure.SlightRight))
	case lowPriorityLeft && !lowPriorityRight:
		right.SetInstruction(h.getInstructionForObvious(3, viaEdge, false, right))
		left.SetInstruction(datastructure.NewTurnInstruction(
			h.findBasicTurnType(viaEdge, left), datastructure.SlightLeft))
	default:
		left.SetInstruction(datastructure.NewTurnInstruction(
			datastructure.TurnFork, datastructure.SlightLeft))
		right.SetInstruction(datastructure.NewTurnInstruction(
			datastructure.TurnFork, datastructure.SlightRight))
	}
}

// assignThreeWayFork marks a fork over three roads.
func (h *IntersectionHandler) assignThreeWayFork(viaEdge datastructure.Index,
	left, middle, right *datastructure.ConnectedRoad) {
	left.SetInstruction(datastructure.NewTurnInstruction(
		datastructure.TurnFork, datastructure.SlightLeft))
	middle.SetInstruction(datastructure.NewTurnInstruction(
		datastructure.TurnFork, datastructure.Straight))
	right.SetInstruction(datastructure.NewTurnInstruction(
		datastructure.TurnFork, datastructure.SlightRight))
}

// assignTrivialTurns gives every allowed road in [from, to) its basic turn
// with the direction its angle naturally maps to.
func (h *IntersectionHandler) assignTrivialTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, from, to int) {
	for i := from; i < to; i++ {
		if !intersection[i].IsEntryAllowed() {
			continue
		}
		intersection[i].SetInstruction(datastructure.NewTurnInstruction(
			h.findBasicTurnType(viaEdge, &intersection[i]),
			geo.GetTurnDirection(intersection[i].GetAngle())))
	}
}
