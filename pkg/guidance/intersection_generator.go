package guidance

import (
	"math"
	"sort"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

// IntersectionGenerator builds the angle-sorted intersection view for an
// incoming edge: every outgoing road of the edge's head vertex, with its turn
// angle relative to the direction of travel on the via edge.
type IntersectionGenerator struct {
	graph Graph
}

func NewIntersectionGenerator(graph Graph) *IntersectionGenerator {
	return &IntersectionGenerator{graph: graph}
}

// approachBearing. direction of travel at the far end of the edge, taken from
// the last geometry segment.
func (g *IntersectionGenerator) approachBearing(edge *datastructure.OutEdge) float64 {
	geometry := edge.GetGeometry()
	if len(geometry) >= 2 {
		from := geometry[len(geometry)-2]
		to := geometry[len(geometry)-1]
		return geo.BearingTo(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon())
	}
	tail := g.graph.GetVertex(edge.GetTail())
	head := g.graph.GetVertex(edge.GetHead())
	return geo.BearingTo(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon())
}

// departBearing. direction of travel when entering the edge, taken from the
// first geometry segment.
func (g *IntersectionGenerator) departBearing(edge *datastructure.OutEdge) float64 {
	geometry := edge.GetGeometry()
	if len(geometry) >= 2 {
		from := geometry[0]
		to := geometry[1]
		return geo.BearingTo(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon())
	}
	tail := g.graph.GetVertex(edge.GetTail())
	head := g.graph.GetVertex(edge.GetHead())
	return geo.BearingTo(tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon())
}

/*
Generate builds the intersection at the head of viaEdge. The road pointing
back along the via edge always sits at index 0 with angle 0; the remaining
roads follow sorted by angle, counter-clockwise from sharp right through
straight to sharp left.
*/
func (g *IntersectionGenerator) Generate(viaEdge datastructure.Index) datastructure.Intersection {
	via := g.graph.GetOutEdge(viaEdge)
	viaBearing := g.approachBearing(via)

	intersection := make(datastructure.Intersection, 0, g.graph.GetOutDegree(via.GetHead()))
	haveUTurn := false

	g.graph.ForOutEdgesOf(via.GetHead(), func(e *datastructure.OutEdge) {
		bearing := g.departBearing(e)
		angle := geo.TurnAngleFromBearings(viaBearing, bearing)
		if e.GetEdgeId() == via.GetReverseEdge() {
			// tiny survey offsets between the two halves of a way otherwise
			// leave the u-turn road slightly off zero
			angle = 0
			haveUTurn = true
		}
		intersection = append(intersection,
			datastructure.NewConnectedRoad(e.GetEdgeId(), angle, bearing, e.IsEntryAllowed()))
	})

	if !haveUTurn {
		// dead-end oneway: synthesize the turn back onto the via edge so the
		// index 0 contract holds, not enterable
		uTurnBearing := math.Mod(viaBearing+180, 360)
		intersection = append(intersection,
			datastructure.NewConnectedRoad(viaEdge, 0, uTurnBearing, false))
	}

	sort.SliceStable(intersection, func(i, j int) bool {
		return intersection[i].GetAngle() < intersection[j].GetAngle()
	})

	return intersection
}
