package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

// TurnHandler classifies the turns of one intersection: every outgoing road
// gets a turn type and a direction modifier derived from angles and road
// classes alone. Pure per invocation; the graph and name tables are borrowed
// read-only, so callers may shard intersections across goroutines freely.
type TurnHandler struct {
	*IntersectionHandler
}

func NewTurnHandler(graph Graph, suffixTable *SuffixTable) *TurnHandler {
	return &TurnHandler{
		IntersectionHandler: NewIntersectionHandler(graph, suffixTable),
	}
}

// CanProcess exists to satisfy the handler-chain contract; the turn handler
// accepts every intersection.
func (h *TurnHandler) CanProcess(viaEdge datastructure.Index,
	intersection datastructure.Intersection) bool {
	return true
}

// fork is a contiguous range [right, left] of 2-3 roads that diverge at
// similar angles near straight.
type fork struct {
	right int
	left  int
	size  int
}

func newFork(right, left int) fork {
	return fork{
		right: right,
		left:  left,
		size:  left - right + 1,
	}
}

type straightestTurn struct {
	id                    int
	deviationFromStraight float64
}

// findClosestToStraight returns the entry-allowed road closest to going
// straight through. Deviation stays 180 when no road allows entry.
func findClosestToStraight(intersection datastructure.Intersection) straightestTurn {
	best := 0
	bestDeviation := 180.0
	for i := 1; i < len(intersection); i++ {
		deviation := geo.DeviationFromStraight(intersection[i].GetAngle())
		if intersection[i].IsEntryAllowed() && deviation < bestDeviation {
			best = i
			bestDeviation = deviation
		}
	}
	return straightestTurn{id: best, deviationFromStraight: bestDeviation}
}

// isOutermostForkCandidate. given two adjacent roads with road1 a fork
// candidate, report whether road2 is NOT one as well, making road1 the
// outermost edge of the fork.
func isOutermostForkCandidate(road1, road2 *datastructure.ConnectedRoad) bool {
	angleBetweenNextRoadAndStraight := geo.DeviationFromStraight(road2.GetAngle())
	angleBetweenRoads := geo.AngularDeviation(road1.GetAngle(), road2.GetAngle())
	angleBetweenPrevRoadAndStraight := geo.DeviationFromStraight(road1.GetAngle())

	// a road is a fork candidate if it is close to straight or close to a
	// street that goes close to straight
	if angleBetweenNextRoadAndStraight > pkg.NARROW_TURN_ANGLE {
		if angleBetweenRoads > pkg.NARROW_TURN_ANGLE ||
			angleBetweenPrevRoadAndStraight > pkg.GROUP_ANGLE {
			return true
		}
	}
	return false
}

func isEndOfRoad(possibleRightTurn, possibleLeftTurn *datastructure.ConnectedRoad) bool {
	return geo.AngularDeviation(possibleRightTurn.GetAngle(), 90) < pkg.NARROW_TURN_ANGLE &&
		geo.AngularDeviation(possibleLeftTurn.GetAngle(), 270) < pkg.NARROW_TURN_ANGLE &&
		geo.AngularDeviation(possibleRightTurn.GetAngle(), possibleLeftTurn.GetAngle()) >
			2*pkg.NARROW_TURN_ANGLE
}

// Compute processes the turns of one intersection coming from viaEdge and
// returns it with every road's instruction assigned.
func (h *TurnHandler) Compute(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {
	if pkg.DEBUG && !intersection.Valid() {
		panic("intersection precondition violated: unsorted or first road not the u-turn")
	}

	// disallowed roads still get labeled so downstream can render them as
	// shown-but-not-selectable choices
	for i := range intersection {
		if !intersection[i].IsEntryAllowed() {
			intersection[i].SetInstruction(datastructure.NewTurnInstruction(
				datastructure.TurnInvalid, geo.GetTurnDirection(intersection[i].GetAngle())))
		}
	}

	if len(intersection) == 1 {
		return h.handleOneWayTurn(intersection)
	}

	if intersection[0].IsEntryAllowed() {
		intersection[0].SetInstruction(datastructure.NewTurnInstruction(
			h.findBasicTurnType(viaEdge, &intersection[0]), datastructure.UTurn))
	}

	if len(intersection) == 2 {
		return h.handleTwoWayTurn(viaEdge, intersection)
	}

	if len(intersection) == 3 {
		return h.handleThreeWayTurn(viaEdge, intersection)
	}

	return h.handleComplexTurn(viaEdge, intersection)
}

func (h *TurnHandler) handleOneWayTurn(intersection datastructure.Intersection) datastructure.Intersection {
	return intersection
}

func (h *TurnHandler) handleTwoWayTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {
	intersection[1].SetInstruction(h.getInstructionForObvious(
		len(intersection), viaEdge, false, &intersection[1]))

	return intersection
}

// isObviousOfTwo. coming from viaEdge, does road clearly win over other as
// the continuation?
func (h *TurnHandler) isObviousOfTwo(viaEdge datastructure.Index,
	road, other *datastructure.ConnectedRoad) bool {
	viaClass := h.graph.GetEdgeData(viaEdge).GetRoadClassification()
	roadClass := h.graph.GetEdgeData(road.GetEid()).GetRoadClassification()
	otherClass := h.graph.GetEdgeData(other.GetEid()).GetRoadClassification()

	// if one of the given roads is obvious by class, obviousness is trivial
	if datastructure.ObviousByRoadClass(viaClass, roadClass, otherClass) {
		return true
	}
	if datastructure.ObviousByRoadClass(viaClass, otherClass, roadClass) {
		return false
	}

	turnIsPerfectlyStraight := geo.DeviationFromStraight(road.GetAngle()) < perfectlyStraight
	if turnIsPerfectlyStraight && h.graph.GetStreetName(viaEdge) != "" &&
		h.sameName(viaEdge, road.GetEid()) {
		return true
	}

	roadDeviation := geo.DeviationFromStraight(road.GetAngle())
	otherDeviation := geo.DeviationFromStraight(other.GetAngle())
	isMuchNarrowerThanOther :=
		otherDeviation/roadDeviation > pkg.INCREASES_BY_FOURTY_PERCENT &&
			geo.AngularDeviation(otherDeviation, roadDeviation) > pkg.FUZZY_ANGLE_DIFFERENCE

	return isMuchNarrowerThanOther
}

func (h *TurnHandler) hasObvious(viaEdge datastructure.Index,
	intersection datastructure.Intersection, f fork) bool {
	for i := f.right; i < f.left; i++ {
		if h.isObviousOfTwo(viaEdge, &intersection[i], &intersection[i+1]) ||
			h.isObviousOfTwo(viaEdge, &intersection[i+1], &intersection[i]) {
			return true
		}
	}
	return false
}

func (h *TurnHandler) handleThreeWayTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {
	obviousIndex := h.findObviousTurn(viaEdge, intersection)

	/* two nearly straight turns -> FORK
	         OOOOOOO
	       /
	IIIIII
	       \
	         OOOOOOO
	*/
	f, hasFork := h.findFork(viaEdge, intersection)

	if hasFork && obviousIndex == 0 {
		h.assignFork(viaEdge, &intersection[f.left], &intersection[f.right])
	} else if isEndOfRoad(&intersection[1], &intersection[2]) && obviousIndex == 0 {
		/*  T intersection

		    OOOOOOO T OOOOOOOO
		            I
		            I
		            I
		*/
		if intersection[1].IsEntryAllowed() {
			if h.findBasicTurnType(viaEdge, &intersection[1]) != datastructure.TurnOnRamp {
				intersection[1].SetInstruction(datastructure.NewTurnInstruction(
					datastructure.TurnEndOfRoad, datastructure.Right))
			} else {
				intersection[1].SetInstruction(datastructure.NewTurnInstruction(
					datastructure.TurnOnRamp, datastructure.Right))
			}
		}
		if intersection[2].IsEntryAllowed() {
			if h.findBasicTurnType(viaEdge, &intersection[2]) != datastructure.TurnOnRamp {
				intersection[2].SetInstruction(datastructure.NewTurnInstruction(
					datastructure.TurnEndOfRoad, datastructure.Left))
			} else {
				intersection[2].SetInstruction(datastructure.NewTurnInstruction(
					datastructure.TurnOnRamp, datastructure.Left))
			}
		}
	} else if obviousIndex != 0 {
		directionAtOne := geo.GetTurnDirection(intersection[1].GetAngle())
		directionAtTwo := geo.GetTurnDirection(intersection[2].GetAngle())
		if obviousIndex == 1 {
			intersection[1].SetInstruction(h.getInstructionForObvious(
				3, viaEdge, h.isThroughStreet(1, intersection), &intersection[1]))

			// both roads at the same coarse direction near straight would be
			// indistinguishable, shift the left one
			secondDirection := directionAtTwo
			if directionAtOne == directionAtTwo && directionAtTwo == datastructure.Straight {
				secondDirection = datastructure.SlightLeft
			}
			if intersection[2].IsEntryAllowed() {
				intersection[2].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[2]), secondDirection))
			}
		} else {
			intersection[2].SetInstruction(h.getInstructionForObvious(
				3, viaEdge, h.isThroughStreet(2, intersection), &intersection[2]))

			firstDirection := directionAtOne
			if directionAtOne == directionAtTwo && directionAtOne == datastructure.Straight {
				firstDirection = datastructure.SlightRight
			}
			if intersection[1].IsEntryAllowed() {
				intersection[1].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[1]), firstDirection))
			}
		}
	} else {
		h.assignTrivialTurns(viaEdge, intersection, 1, len(intersection))
	}
	return intersection
}

func (h *TurnHandler) handleComplexTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {
	obviousIndex := h.findObviousTurn(viaEdge, intersection)
	f, hasFork := h.findFork(viaEdge, intersection)
	straightest := findClosestToStraight(intersection)

	if obviousIndex != 0 {
		intersection[obviousIndex].SetInstruction(h.getInstructionForObvious(
			len(intersection), viaEdge, h.isThroughStreet(obviousIndex, intersection),
			&intersection[obviousIndex]))

		intersection = h.assignLeftTurns(viaEdge, intersection, obviousIndex+1)
		intersection = h.assignRightTurns(viaEdge, intersection, obviousIndex)
	} else if hasFork {
		if f.size == 2 {
			leftClass := h.graph.GetEdgeData(intersection[f.left].GetEid()).GetRoadClassification()
			rightClass := h.graph.GetEdgeData(intersection[f.right].GetEid()).GetRoadClassification()
			if datastructure.CanBeSeenAsFork(leftClass, rightClass) {
				h.assignFork(viaEdge, &intersection[f.left], &intersection[f.right])
			} else if leftClass.GetPriority() > rightClass.GetPriority() {
				// the right side outranks the left: announce it as the
				// continuation, the left becomes a slight turn away from it
				intersection[f.right].SetInstruction(h.getInstructionForObvious(
					len(intersection), viaEdge, false, &intersection[f.right]))
				intersection[f.left].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[f.left]), datastructure.SlightLeft))
			} else {
				intersection[f.left].SetInstruction(h.getInstructionForObvious(
					len(intersection), viaEdge, false, &intersection[f.left]))
				intersection[f.right].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[f.right]), datastructure.SlightRight))
			}
		} else if f.size == 3 {
			h.assignThreeWayFork(viaEdge, &intersection[f.left],
				&intersection[f.right+1], &intersection[f.right])
		}

		intersection = h.assignLeftTurns(viaEdge, intersection, f.left+1)
		intersection = h.assignRightTurns(viaEdge, intersection, f.right)
	} else if straightest.deviationFromStraight < pkg.FUZZY_ANGLE_DIFFERENCE &&
		!intersection[straightest.id].IsEntryAllowed() {
		// invalid straight turn
		intersection = h.assignLeftTurns(viaEdge, intersection, straightest.id+1)
		intersection = h.assignRightTurns(viaEdge, intersection, straightest.id)
	} else if intersection[straightest.id].GetAngle() > 180 {
		// no straight turn, the closest to straight sits on the left half
		intersection = h.assignLeftTurns(viaEdge, intersection, straightest.id)
		intersection = h.assignRightTurns(viaEdge, intersection, straightest.id)
	} else if intersection[straightest.id].GetAngle() < 180 {
		intersection = h.assignLeftTurns(viaEdge, intersection, straightest.id+1)
		intersection = h.assignRightTurns(viaEdge, intersection, straightest.id+1)
	} else {
		h.assignTrivialTurns(viaEdge, intersection, 1, len(intersection))
	}
	return intersection
}

// assignLeftTurns hands off to assignRightTurns: mirror every road, reverse
// the order of everything but the u-turn, assign the right side, then undo
// the reversal and the mirror. The left side thereby reuses the exact same
// decision code as the right with perfect symmetry.
func (h *TurnHandler) assignLeftTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, startingAt int) datastructure.Intersection {
	switchLeftAndRight := func(intersection datastructure.Intersection) {
		for i := range intersection {
			intersection[i].Mirror()
		}
		for l, r := 1, len(intersection)-1; l < r; l, r = l+1, r-1 {
			intersection[l], intersection[r] = intersection[r], intersection[l]
		}
	}

	switchLeftAndRight(intersection)
	// account for the u-turn in the beginning
	count := len(intersection) - startingAt + 1
	intersection = h.assignRightTurns(viaEdge, intersection, count)
	switchLeftAndRight(intersection)

	return intersection
}

// assignRightTurns assigns the roads at [1, upTo) on the right side of the
// intersection. At most three turns can be distinguished on one side.
func (h *TurnHandler) assignRightTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, upTo int) datastructure.Intersection {
	if upTo <= 1 || intersection.CountValidEntries(1, upTo) == 0 {
		return intersection
	}
	if upTo == 2 {
		// single turn
		h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
	} else if upTo == 3 {
		firstDirection := geo.GetTurnDirection(intersection[1].GetAngle())
		secondDirection := geo.GetTurnDirection(intersection[2].GetAngle())
		if firstDirection == secondDirection {
			// conflict
			h.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
		} else {
			h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		}
	} else if upTo == 4 {
		firstDirection := geo.GetTurnDirection(intersection[1].GetAngle())
		secondDirection := geo.GetTurnDirection(intersection[2].GetAngle())
		thirdDirection := geo.GetTurnDirection(intersection[3].GetAngle())
		if firstDirection != secondDirection && secondDirection != thirdDirection {
			// due to the circular order the directions are pairwise unique
			h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		} else if intersection.CountValidEntries(1, upTo) <= 2 {
			// at least a single invalid
			if !intersection[3].IsEntryAllowed() {
				h.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
			} else if !intersection[1].IsEntryAllowed() {
				h.handleDistinctConflict(viaEdge, &intersection[3], &intersection[2])
			} else {
				// handles one valid as well as two valid (1,3)
				h.handleDistinctConflict(viaEdge, &intersection[3], &intersection[1])
			}
		} else if geo.AngularDeviation(intersection[1].GetAngle(), intersection[2].GetAngle()) >= pkg.NARROW_TURN_ANGLE &&
			geo.AngularDeviation(intersection[2].GetAngle(), intersection[3].GetAngle()) >= pkg.NARROW_TURN_ANGLE {
			// conflicting turns, but each pair farther apart than a narrow turn
			intersection[1].SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, &intersection[1]), datastructure.SharpRight))
			intersection[2].SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, &intersection[2]), datastructure.Right))
			intersection[3].SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, &intersection[3]), datastructure.SlightRight))
		} else if (firstDirection == secondDirection && secondDirection == thirdDirection) ||
			(firstDirection == secondDirection &&
				geo.AngularDeviation(intersection[2].GetAngle(), intersection[3].GetAngle()) < pkg.GROUP_ANGLE) ||
			(secondDirection == thirdDirection &&
				geo.AngularDeviation(intersection[1].GetAngle(), intersection[2].GetAngle()) < pkg.GROUP_ANGLE) {
			// count backwards from the slightest turn
			h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		} else if (firstDirection == secondDirection &&
			geo.AngularDeviation(intersection[2].GetAngle(), intersection[3].GetAngle()) >= pkg.GROUP_ANGLE) ||
			(secondDirection == thirdDirection &&
				geo.AngularDeviation(intersection[1].GetAngle(), intersection[2].GetAngle()) >= pkg.GROUP_ANGLE) {
			// the isolated road keeps its natural direction, the close pair
			// resolves its conflict
			if geo.AngularDeviation(intersection[2].GetAngle(), intersection[3].GetAngle()) >= pkg.GROUP_ANGLE {
				h.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
				intersection[3].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[3]), thirdDirection))
			} else {
				intersection[1].SetInstruction(datastructure.NewTurnInstruction(
					h.findBasicTurnType(viaEdge, &intersection[1]), firstDirection))
				h.handleDistinctConflict(viaEdge, &intersection[3], &intersection[2])
			}
		} else {
			h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		}
	} else {
		h.assignTrivialTurns(viaEdge, intersection, 1, upTo)
	}
	return intersection
}

// findLeftAndRightmostForkCandidates scans outward from the straightest road
// for the contiguous window of roads that could form a fork.
func (h *TurnHandler) findLeftAndRightmostForkCandidates(
	intersection datastructure.Intersection) (fork, bool) {
	if len(intersection) < 3 {
		return fork{}, false
	}
	straightest := findClosestToStraight(intersection)

	// forks can only happen when two or more roads have a pretty narrow
	// angle between each other and are close to going straight
	if straightest.deviationFromStraight > pkg.NARROW_TURN_ANGLE {
		return fork{}, false
	}

	// find the leftmost road that might be part of a fork
	leftmost := len(intersection) - 1
	for i := straightest.id; i < len(intersection)-1; i++ {
		if isOutermostForkCandidate(&intersection[i], &intersection[i+1]) {
			leftmost = i
			break
		}
	}

	// find the rightmost road that might be part of a fork, never crossing
	// into the u-turn at index 0
	rightmost := 1
	for i := straightest.id; i > 1; i-- {
		if isOutermostForkCandidate(&intersection[i], &intersection[i-1]) {
			rightmost = i
			break
		}
	}

	// if the leftmost and rightmost roads with the conditions above are the
	// same or if there are more than three fork candidates they cannot form
	// a fork
	if rightmost < leftmost && leftmost-rightmost+1 <= 3 {
		return newFork(rightmost, leftmost), true
	}
	return fork{}, false
}

// isCompatibleByRoadClass checks that the fork candidates make sense as one
// fork: link roads only fork with link roads and no candidate dominates
// another by class.
func (h *TurnHandler) isCompatibleByRoadClass(intersection datastructure.Intersection, f fork) bool {
	viaClass := h.graph.GetEdgeData(intersection[0].GetEid()).GetRoadClassification()

	// if any of the considered roads is a link road, it cannot be a fork
	// except if the rightmost candidate is also a link road
	isRightLinkClass := h.graph.GetEdgeData(intersection[f.right].GetEid()).
		GetRoadClassification().IsLinkClass()
	for i := f.right + 1; i <= f.left; i++ {
		if isRightLinkClass != h.graph.GetEdgeData(intersection[i].GetEid()).
			GetRoadClassification().IsLinkClass() {
			return false
		}
	}

	for base := f.right; base <= f.left; base++ {
		baseClass := h.graph.GetEdgeData(intersection[base].GetEid()).GetRoadClassification()
		for compare := f.right; compare <= f.left; compare++ {
			compareClass := h.graph.GetEdgeData(intersection[compare].GetEid()).GetRoadClassification()
			if datastructure.ObviousByRoadClass(viaClass, baseClass, compareClass) &&
				intersection[compare].GetEid() != intersection[base].GetEid() {
				return false
			}
		}
	}
	return true
}

// findFork identifies a genuine multi-way fork: geometric candidates that
// are isolated from the neighbouring streets, contain no obvious winner,
// carry compatible classes and all allow entry.
func (h *TurnHandler) findFork(viaEdge datastructure.Index,
	intersection datastructure.Intersection) (fork, bool) {
	f, ok := h.findLeftAndRightmostForkCandidates(intersection)
	if !ok {
		return fork{}, false
	}

	// make sure the fork is isolated from the neighbouring streets on both
	// sides
	next := 0
	if f.left+1 < len(intersection) {
		next = f.left + 1
	}
	separatedAtLeftSide := geo.AngularDeviation(
		intersection[f.left].GetAngle(), intersection[next].GetAngle()) >= pkg.GROUP_ANGLE
	separatedAtRightSide := geo.AngularDeviation(
		intersection[f.right].GetAngle(), intersection[f.right-1].GetAngle()) >= pkg.GROUP_ANGLE

	// forks are never obvious: if there is an obvious turn inside, it's not
	// a fork
	hasObvious := h.hasObvious(viaEdge, intersection, f)

	// a fork can only happen between edges of similar types where none of
	// them is obvious
	hasCompatibleClasses := h.isCompatibleByRoadClass(intersection, f)

	onlyValidEntries := intersection.HasValidEntries(f.right, f.left)

	if separatedAtLeftSide && separatedAtRightSide && !hasObvious &&
		hasCompatibleClasses && onlyValidEntries {
		return f, true
	}
	return fork{}, false
}

// handleDistinctConflict resolves two roads that map to the same coarse
// direction; right has the smaller angle. Once the fork-or-priority branch
// assigns modifiers, the later shifts must not overwrite them.
func (h *TurnHandler) handleDistinctConflict(viaEdge datastructure.Index,
	left, right *datastructure.ConnectedRoad) {
	// single valid turn of both (don't change the valid one), or multiple
	// identical angles from a bad map
	if !left.IsEntryAllowed() || !right.IsEntryAllowed() || left.GetAngle() == right.GetAngle() {
		if left.IsEntryAllowed() {
			left.SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, left), geo.GetTurnDirection(left.GetAngle())))
		}
		if right.IsEntryAllowed() {
			right.SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, right), geo.GetTurnDirection(right.GetAngle())))
		}
		return
	}

	leftDirection := geo.GetTurnDirection(left.GetAngle())
	rightDirection := geo.GetTurnDirection(right.GetAngle())

	if leftDirection == datastructure.Straight ||
		leftDirection == datastructure.SlightLeft ||
		rightDirection == datastructure.SlightRight {
		leftClass := h.graph.GetEdgeData(left.GetEid()).GetRoadClassification()
		rightClass := h.graph.GetEdgeData(right.GetEid()).GetRoadClassification()
		if datastructure.CanBeSeenAsFork(leftClass, rightClass) {
			h.assignFork(viaEdge, left, right)
			return
		}
		if leftClass.GetPriority() > rightClass.GetPriority() {
			// the size of the intersection is unknown here, declare it
			// complex to be on the safe side
			right.SetInstruction(h.getInstructionForObvious(4, viaEdge, false, right))
			left.SetInstruction(datastructure.NewTurnInstruction(
				h.findBasicTurnType(viaEdge, left), datastructure.SlightLeft))
			return
		}
		left.SetInstruction(h.getInstructionForObvious(4, viaEdge, false, left))
		right.SetInstruction(datastructure.NewTurnInstruction(
			h.findBasicTurnType(viaEdge, right), datastructure.SlightRight))
		return
	}

	leftType := h.findBasicTurnType(viaEdge, left)
	rightType := h.findBasicTurnType(viaEdge, right)
	// two right turns
	if geo.AngularDeviation(left.GetAngle(), 90) < pkg.MAXIMAL_ALLOWED_NO_TURN_DEVIATION {
		// keep left perfect, shift right
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.Right))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.SharpRight))
		return
	}
	if geo.AngularDeviation(right.GetAngle(), 90) < pkg.MAXIMAL_ALLOWED_NO_TURN_DEVIATION {
		// keep right perfect, shift left
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.SlightRight))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.Right))
		return
	}
	// two left turns
	if geo.AngularDeviation(left.GetAngle(), 270) < pkg.MAXIMAL_ALLOWED_NO_TURN_DEVIATION {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.Left))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.SlightLeft))
		return
	}
	if geo.AngularDeviation(right.GetAngle(), 270) < pkg.MAXIMAL_ALLOWED_NO_TURN_DEVIATION {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.SharpLeft))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.Left))
		return
	}
	// shift the lesser penalty
	if leftDirection == datastructure.SharpLeft {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.SharpLeft))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.Left))
		return
	}
	if rightDirection == datastructure.SharpRight {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.Right))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.SharpRight))
		return
	}

	if leftDirection == datastructure.Right {
		if geo.AngularDeviation(left.GetAngle(), 85) >= geo.AngularDeviation(right.GetAngle(), 85) {
			left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.Right))
			right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.SharpRight))
		} else {
			left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.SlightRight))
			right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.Right))
		}
		return
	}
	if geo.AngularDeviation(left.GetAngle(), 265) >= geo.AngularDeviation(right.GetAngle(), 265) {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.SharpLeft))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.Left))
	} else {
		left.SetInstruction(datastructure.NewTurnInstruction(leftType, datastructure.Left))
		right.SetInstruction(datastructure.NewTurnInstruction(rightType, datastructure.SlightLeft))
	}
}
