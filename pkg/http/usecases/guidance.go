package usecases

import (
	"sort"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/guidance"
	"github.com/lintang-b-s/guidancex/pkg/spatialindex"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"go.uber.org/zap"
)

// ClassifiedRoad is one outgoing road of a classified intersection as served
// over the API.
type ClassifiedRoad struct {
	EdgeId            uint32  `json:"edge_id"`
	Angle             float64 `json:"angle"`
	Bearing           float64 `json:"bearing"`
	EntryAllowed      bool    `json:"entry_allowed"`
	TurnType          string  `json:"turn_type"`
	DirectionModifier string  `json:"direction_modifier"`
	// Suggested marks the enterable road closest to going straight through.
	Suggested        bool   `json:"suggested,omitempty"`
	StreetName       string `json:"street_name,omitempty"`
	GeometryPolyline string `json:"geometry,omitempty"`
}

// RawRoad describes one road of an ad-hoc intersection submitted for
// classification without any graph behind it.
type RawRoad struct {
	Angle        float64
	EntryAllowed bool
	HighwayType  string
	StreetName   string
}

type GuidanceService struct {
	log           *zap.Logger
	graph         *datastructure.Graph
	rtree         *spatialindex.Rtree
	handler       *guidance.TurnHandler
	generator     *guidance.IntersectionGenerator
	maxSnapRadius float64 // km
}

func NewGuidanceService(log *zap.Logger, graph *datastructure.Graph,
	rtree *spatialindex.Rtree, maxSnapRadius float64) *GuidanceService {
	return &GuidanceService{
		log:           log,
		graph:         graph,
		rtree:         rtree,
		handler:       guidance.NewTurnHandler(graph, guidance.DefaultSuffixTable()),
		generator:     guidance.NewIntersectionGenerator(graph),
		maxSnapRadius: maxSnapRadius,
	}
}

func (s *GuidanceService) approachSegment(e *datastructure.OutEdge) (fromLat, fromLon, toLat, toLon float64) {
	geometry := e.GetGeometry()
	if len(geometry) >= 2 {
		from := geometry[len(geometry)-2]
		to := geometry[len(geometry)-1]
		return from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon()
	}
	tail := s.graph.GetVertex(e.GetTail())
	head := s.graph.GetVertex(e.GetHead())
	return tail.GetLat(), tail.GetLon(), head.GetLat(), head.GetLon()
}

func (s *GuidanceService) edgeApproachBearing(e *datastructure.OutEdge) float64 {
	fromLat, fromLon, toLat, toLon := s.approachSegment(e)
	return geo.BearingTo(fromLat, fromLon, toLat, toLon)
}

// snapDistanceMeter. distance from the query point to its projection onto the
// edge's approach segment.
func (s *GuidanceService) snapDistanceMeter(lat, lon float64, e *datastructure.OutEdge) float64 {
	fromLat, fromLon, toLat, toLon := s.approachSegment(e)
	projLat, projLon := geo.ProjectPointToLine(fromLat, fromLon, toLat, toLon, lat, lon)
	return geo.EarthDistanceMeter(lat, lon, projLat, projLon)
}

/*
ClassifyIntersection snaps the query position to the via edge whose head is
closest and whose direction of travel best matches the query bearing, then
returns its classified intersection.
*/
func (s *GuidanceService) ClassifyIntersection(lat, lon, bearing float64) ([]ClassifiedRoad, error) {
	candidates := s.rtree.SearchWithinRadius(lat, lon, s.maxSnapRadius)
	if len(candidates) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no road found within %.0f m of (%f, %f)", s.maxSnapRadius*1000, lat, lon)
	}

	bestEdge := datastructure.InvalidIndex
	bestScore := 0.0
	for _, candidate := range candidates {
		e := s.graph.GetOutEdge(candidate.GetEdgeId())

		distMeter := s.snapDistanceMeter(lat, lon, e)
		bearingDeviation := geo.AngularDeviation(bearing, s.edgeApproachBearing(e))

		// a degree of heading mismatch costs about as much as a meter of
		// snapping distance
		score := distMeter + bearingDeviation
		if bestEdge == datastructure.InvalidIndex || score < bestScore {
			bestEdge = candidate.GetEdgeId()
			bestScore = score
		}
	}

	intersection := s.generator.Generate(bestEdge)
	intersection = s.handler.Compute(bestEdge, intersection)
	suggested := intersection.FindClosestTurn(pkg.STRAIGHT_ANGLE)

	roads := make([]ClassifiedRoad, 0, len(intersection))
	for i := range intersection {
		road := &intersection[i]
		e := s.graph.GetOutEdge(road.GetEid())
		roads = append(roads, ClassifiedRoad{
			EdgeId:            uint32(road.GetEid()),
			Angle:             util.RoundFloat(road.GetAngle(), 2),
			Bearing:           util.RoundFloat(road.GetBearing(), 2),
			EntryAllowed:      road.IsEntryAllowed(),
			TurnType:          road.GetInstruction().GetTurnType().String(),
			DirectionModifier: road.GetInstruction().GetDirectionModifier().String(),
			Suggested:         i == suggested && road.IsEntryAllowed(),
			StreetName:        s.graph.GetStreetName(road.GetEid()),
			GeometryPolyline:  geo.PolylineFromCoords(e.GetGeometry()),
		})
	}
	return roads, nil
}

// rawGraph adapts an ad-hoc list of roads to the graph view the classifier
// reads. Road i is edge i; the via edge sits one past the last road.
type rawGraph struct {
	data  []datastructure.EdgeData
	names []string
}

func (g *rawGraph) GetEdgeData(edgeId datastructure.Index) datastructure.EdgeData {
	return g.data[edgeId]
}

func (g *rawGraph) GetStreetName(edgeId datastructure.Index) string {
	return g.names[edgeId]
}

func (g *rawGraph) GetVertex(u datastructure.Index) *datastructure.Vertex { return nil }

func (g *rawGraph) GetOutEdge(edgeId datastructure.Index) *datastructure.OutEdge { return nil }

func (g *rawGraph) GetOutDegree(u datastructure.Index) int { return 0 }

func (g *rawGraph) ForOutEdgesOf(u datastructure.Index, handle func(e *datastructure.OutEdge)) {
}

/*
ClassifyTurns classifies an intersection described directly in the request,
with no graph behind it. The road list must contain the turn back onto the
via road at angle 0; roads may arrive in any order.
*/
func (s *GuidanceService) ClassifyTurns(via RawRoad, rawRoads []RawRoad) ([]ClassifiedRoad, error) {
	if len(rawRoads) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "intersection has no roads")
	}

	g := &rawGraph{
		data:  make([]datastructure.EdgeData, 0, len(rawRoads)+1),
		names: make([]string, 0, len(rawRoads)+1),
	}

	intersection := make(datastructure.Intersection, 0, len(rawRoads))
	for i, raw := range rawRoads {
		classification := datastructure.NewRoadClassification(pkg.GetHighwayType(raw.HighwayType))
		g.data = append(g.data, datastructure.NewEdgeData(classification, datastructure.EmptyNameID))
		g.names = append(g.names, raw.StreetName)
		intersection = append(intersection, datastructure.NewConnectedRoad(
			datastructure.Index(i), raw.Angle, 0, raw.EntryAllowed))
	}

	viaEdge := datastructure.Index(len(rawRoads))
	viaClassification := datastructure.NewRoadClassification(pkg.GetHighwayType(via.HighwayType))
	g.data = append(g.data, datastructure.NewEdgeData(viaClassification, datastructure.EmptyNameID))
	g.names = append(g.names, via.StreetName)

	sort.SliceStable(intersection, func(i, j int) bool {
		return intersection[i].GetAngle() < intersection[j].GetAngle()
	})
	if !intersection.Valid() {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"intersection must contain the road back onto the via road at angle 0")
	}

	handler := guidance.NewTurnHandler(g, guidance.DefaultSuffixTable())
	intersection = handler.Compute(viaEdge, intersection)
	suggested := intersection.FindClosestTurn(pkg.STRAIGHT_ANGLE)

	roads := make([]ClassifiedRoad, 0, len(intersection))
	for i := range intersection {
		road := &intersection[i]
		roads = append(roads, ClassifiedRoad{
			EdgeId:            uint32(road.GetEid()),
			Angle:             util.RoundFloat(road.GetAngle(), 2),
			EntryAllowed:      road.IsEntryAllowed(),
			TurnType:          road.GetInstruction().GetTurnType().String(),
			DirectionModifier: road.GetInstruction().GetDirectionModifier().String(),
			Suggested:         i == suggested && road.IsEntryAllowed(),
			StreetName:        g.names[road.GetEid()],
		})
	}
	return roads, nil
}
