package datastructure

import (
	"github.com/lintang-b-s/guidancex/pkg"
)

// priority ranks of road classes, lower = more important. Link classes sit
// between their mainline class and the next one so that an off-ramp never
// beats the mainline by class.
const (
	PRIORITY_MOTORWAY         uint8 = 0
	PRIORITY_MOTORWAY_LINK    uint8 = 1
	PRIORITY_TRUNK            uint8 = 2
	PRIORITY_TRUNK_LINK       uint8 = 3
	PRIORITY_PRIMARY          uint8 = 4
	PRIORITY_PRIMARY_LINK     uint8 = 5
	PRIORITY_SECONDARY        uint8 = 6
	PRIORITY_SECONDARY_LINK   uint8 = 7
	PRIORITY_TERTIARY         uint8 = 8
	PRIORITY_TERTIARY_LINK    uint8 = 9
	PRIORITY_MAIN_RESIDENTIAL uint8 = 10
	PRIORITY_SIDE_RESIDENTIAL uint8 = 11
	PRIORITY_LINK_ROAD        uint8 = 14
	PRIORITY_UNKNOWN          uint8 = 18
)

// RoadClassification is the capability view of a road class that the turn
// classifier needs: a priority rank plus a link/ramp flag.
type RoadClassification struct {
	priority uint8
	link     bool
}

func NewRoadClassification(hwType pkg.OsmHighwayType) RoadClassification {
	switch hwType {
	case pkg.MOTORWAY, pkg.MOTORROAD:
		return RoadClassification{priority: PRIORITY_MOTORWAY}
	case pkg.TRUNK:
		return RoadClassification{priority: PRIORITY_TRUNK}
	case pkg.PRIMARY:
		return RoadClassification{priority: PRIORITY_PRIMARY}
	case pkg.SECONDARY:
		return RoadClassification{priority: PRIORITY_SECONDARY}
	case pkg.TERTIARY:
		return RoadClassification{priority: PRIORITY_TERTIARY}
	case pkg.RESIDENTIAL, pkg.LIVING_STREET:
		return RoadClassification{priority: PRIORITY_MAIN_RESIDENTIAL}
	case pkg.SERVICE, pkg.TRACK:
		return RoadClassification{priority: PRIORITY_SIDE_RESIDENTIAL}
	case pkg.UNCLASSIFIED, pkg.ROAD:
		return RoadClassification{priority: PRIORITY_MAIN_RESIDENTIAL}
	case pkg.MOTORWAY_LINK:
		return RoadClassification{priority: PRIORITY_MOTORWAY_LINK, link: true}
	case pkg.TRUNK_LINK:
		return RoadClassification{priority: PRIORITY_TRUNK_LINK, link: true}
	case pkg.PRIMARY_LINK:
		return RoadClassification{priority: PRIORITY_PRIMARY_LINK, link: true}
	case pkg.SECONDARY_LINK:
		return RoadClassification{priority: PRIORITY_SECONDARY_LINK, link: true}
	case pkg.TERTIARY_LINK:
		return RoadClassification{priority: PRIORITY_TERTIARY_LINK, link: true}
	default:
		return RoadClassification{priority: PRIORITY_UNKNOWN}
	}
}

func NewRoadClassificationRaw(priority uint8, link bool) RoadClassification {
	return RoadClassification{priority: priority, link: link}
}

func (rc RoadClassification) GetPriority() uint8 {
	return rc.priority
}

func (rc RoadClassification) IsLinkClass() bool {
	return rc.link
}

// IsRampClass reports whether the road is a motorway/trunk interchange ramp.
func (rc RoadClassification) IsRampClass() bool {
	return rc.link && rc.priority <= PRIORITY_TRUNK_LINK
}

func (rc RoadClassification) IsLowPriorityRoadClass() bool {
	return rc.priority >= PRIORITY_LINK_ROAD
}

func (rc RoadClassification) Equal(other RoadClassification) bool {
	return rc.priority == other.priority && rc.link == other.link
}

/*
ObviousByRoadClass. coming from via, is candidate clearly the primary
continuation compared to compare by road class alone? true when the via edge
continues on the same class and the candidate outranks the rival by more
than the distinction factor, or when only the rival is a low-priority road.
*/
func ObviousByRoadClass(via, candidate, compare RoadClassification) bool {
	hasHighPriority := pkg.PRIORITY_DISTINCTION_FACTOR*float64(candidate.priority) < float64(compare.priority)
	continuesOnSameClass := via.Equal(candidate)

	return (hasHighPriority && continuesOnSameClass) ||
		(!candidate.IsLowPriorityRoadClass() && !via.IsLowPriorityRoadClass() &&
			compare.IsLowPriorityRoadClass())
}

// CanBeSeenAsFork. two classes fork only if their priorities are within one
// rank of each other.
func CanBeSeenAsFork(first, second RoadClassification) bool {
	diff := int(first.priority) - int(second.priority)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}
