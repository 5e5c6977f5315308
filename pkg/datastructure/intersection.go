package datastructure

import (
	"fmt"
	"math"
)

const angleEpsilon = 1e-9

// angularDeviation. smaller angle between a and b on the circular domain
// [0,360). result in [0,180].
func angularDeviation(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		return 360 - d
	}
	return d
}

// ConnectedRoad is one outgoing edge of an intersection, seen from the via
// edge the driver arrives on. angle is the counter-clockwise turn angle in
// [0,360): 0 = u-turn back onto the via edge, 180 = straight through.
type ConnectedRoad struct {
	eid          Index
	angle        float64
	bearing      float64
	entryAllowed bool
	instruction  TurnInstruction
}

func NewConnectedRoad(eid Index, angle, bearing float64, entryAllowed bool) ConnectedRoad {
	return ConnectedRoad{
		eid:          eid,
		angle:        angle,
		bearing:      bearing,
		entryAllowed: entryAllowed,
	}
}

func (r *ConnectedRoad) GetEid() Index {
	return r.eid
}

func (r *ConnectedRoad) GetAngle() float64 {
	return r.angle
}

func (r *ConnectedRoad) GetBearing() float64 {
	return r.bearing
}

func (r *ConnectedRoad) IsEntryAllowed() bool {
	return r.entryAllowed
}

func (r *ConnectedRoad) GetInstruction() TurnInstruction {
	return r.instruction
}

func (r *ConnectedRoad) SetInstruction(instruction TurnInstruction) {
	r.instruction = instruction
}

func (r *ConnectedRoad) compareByAngle(other *ConnectedRoad) bool {
	return r.angle < other.angle
}

// Mirror flips the road onto the other side of the intersection: the angle
// is reflected around the via edge and the assigned modifier swaps left and
// right. The u-turn road (angle 0) stays put.
func (r *ConnectedRoad) Mirror() {
	if angularDeviation(r.angle, 0) > angleEpsilon {
		r.angle = 360 - r.angle
		r.instruction.directionModifier = r.instruction.directionModifier.Mirror()
	}
}

func (r ConnectedRoad) String() string {
	return fmt.Sprintf("[connection] %d allows entry: %t angle: %f bearing: %f instruction: %v %v",
		r.eid, r.entryAllowed, r.angle, r.bearing, r.instruction.turnType, r.instruction.directionModifier)
}

// Intersection is the angle-sorted sequence of connected roads of one
// junction. Index 0 is always the turn back onto the via edge; indices 1..n
// proceed counter-clockwise from sharp right through straight to sharp left.
type Intersection []ConnectedRoad

// Valid checks the classifier preconditions: non-empty, sorted by angle,
// first entry pointing back along the via edge.
func (in Intersection) Valid() bool {
	if len(in) == 0 {
		return false
	}
	for i := 1; i < len(in); i++ {
		if !in[i-1].compareByAngle(&in[i]) && in[i-1].angle != in[i].angle {
			return false
		}
	}
	return in[0].angle < 1e-3
}

// FindClosestTurn returns the index of the road whose angle deviates least
// from the given angle.
func (in Intersection) FindClosestTurn(angle float64) int {
	best := 0
	bestDeviation := angularDeviation(in[0].angle, angle)
	for i := 1; i < len(in); i++ {
		deviation := angularDeviation(in[i].angle, angle)
		if deviation < bestDeviation {
			best = i
			bestDeviation = deviation
		}
	}
	return best
}

// HasValidEntries reports whether every road in [first, last] allows entry.
func (in Intersection) HasValidEntries(first, last int) bool {
	for i := first; i <= last; i++ {
		if !in[i].entryAllowed {
			return false
		}
	}
	return true
}

func (in Intersection) CountValidEntries(first, last int) int {
	count := 0
	for i := first; i < last; i++ {
		if in[i].entryAllowed {
			count++
		}
	}
	return count
}
