package osmparser

import (
	"context"
	"io"
	"os"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type OsmParser struct {
	wayNodeMap      map[int64]NodeType
	acceptedNodeMap map[int64]nodeCoord
	nodeIDMap       map[int64]datastructure.Index
	streetNameIds   map[string]int32

	vertices    []datastructure.Vertex
	outEdges    []datastructure.OutEdge
	streetNames []string
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		wayNodeMap:      make(map[int64]NodeType),
		acceptedNodeMap: make(map[int64]nodeCoord),
		nodeIDMap:       make(map[int64]datastructure.Index),
		streetNameIds:   make(map[string]int32),
	}
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}

// isOneWay. forward-only streets: explicit oneway tags and roundabouts.
func isOneWay(way *osm.Way) (oneWay, reversed bool) {
	onewayTag := way.Tags.Find("oneway")
	junction := way.Tags.Find("junction")

	switch onewayTag {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return true, true
	}
	if junction == "roundabout" || junction == "circular" {
		return true, false
	}
	return false, false
}

/*
Parse reads an openstreetmap pbf extract and builds the node-based road graph
the guidance extractor walks: one vertex per junction or way endpoint, one
pair of directed edges per street segment between junctions. The reverse half
of a oneway segment is still materialized with entry disallowed so every
intersection view contains the road pointing back.
*/
func (p *OsmParser) Parse(mapFile string, logger *zap.Logger) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// first pass: mark junction nodes (shared by more than one way)
	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()

		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		for i, node := range way.Nodes {
			if _, ok := p.wayNodeMap[int64(node.ID)]; !ok {
				if i == 0 || i == len(way.Nodes)-1 {
					p.wayNodeMap[int64(node.ID)] = END_NODE
				} else {
					p.wayNodeMap[int64(node.ID)] = BETWEEN_NODE
				}
			} else {
				p.wayNodeMap[int64(node.ID)] = JUNCTION_NODE
			}
		}
	}
	scanner.Close()

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// second pass: node coordinates arrive before the ways that use them
	scanner = osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	defer scanner.Close()

	countWays = 0
	for scanner.Scan() {
		o := scanner.Object()

		switch o.ObjectID().Type() {
		case osm.TypeNode:
			node := o.(*osm.Node)
			if _, ok := p.wayNodeMap[int64(node.ID)]; ok {
				p.acceptedNodeMap[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
			}
		case osm.TypeWay:
			way := o.(*osm.Way)
			if len(way.Nodes) < 2 || !acceptOsmWay(way) {
				continue
			}
			if (countWays+1)%50000 == 0 {
				logger.Sugar().Infof("processing openstreetmap ways: %d...", countWays+1)
			}
			countWays++

			p.processWay(way)
		}
	}

	logger.Sugar().Infof("parsed openstreetmap graph: %d vertices, %d edges",
		len(p.vertices), len(p.outEdges))

	return datastructure.NewGraph(p.vertices, p.outEdges, p.streetNames), nil
}

func (p *OsmParser) isSegmentBoundary(index, lastIndex int, nodeID int64) bool {
	return index == 0 || index == lastIndex || p.wayNodeMap[nodeID] == JUNCTION_NODE
}

func (p *OsmParser) processWay(way *osm.Way) {
	oneWay, reversed := isOneWay(way)
	hwType := pkg.GetHighwayType(way.Tags.Find("highway"))
	classification := datastructure.NewRoadClassification(hwType)
	nameId := p.internStreetName(way.Tags.Find("name"))
	data := datastructure.NewEdgeData(classification, nameId)

	segment := make([]datastructure.Coordinate, 0, len(way.Nodes))
	segmentStart := int64(0)

	lastIndex := len(way.Nodes) - 1
	for i, wayNode := range way.Nodes {
		nodeID := int64(wayNode.ID)
		coord, ok := p.acceptedNodeMap[nodeID]
		if !ok {
			// the extract clipped this node away, drop the partial segment
			segment = segment[:0]
			continue
		}

		segment = append(segment, datastructure.NewCoordinate(coord.lat, coord.lon))
		if len(segment) == 1 {
			segmentStart = nodeID
			continue
		}

		if p.isSegmentBoundary(i, lastIndex, nodeID) {
			geometry := make([]datastructure.Coordinate, len(segment))
			copy(geometry, segment)
			p.addSegment(segmentStart, nodeID, geometry, data, oneWay, reversed)
			segment = append(segment[:0], datastructure.NewCoordinate(coord.lat, coord.lon))
			segmentStart = nodeID
		}
	}
}

func (p *OsmParser) internStreetName(name string) int32 {
	if name == "" {
		return datastructure.EmptyNameID
	}
	if id, ok := p.streetNameIds[name]; ok {
		return id
	}
	id := int32(len(p.streetNames))
	p.streetNames = append(p.streetNames, name)
	p.streetNameIds[name] = id
	return id
}

func (p *OsmParser) vertexFor(osmNodeID int64) datastructure.Index {
	if id, ok := p.nodeIDMap[osmNodeID]; ok {
		return id
	}
	coord := p.acceptedNodeMap[osmNodeID]
	id := datastructure.Index(len(p.vertices))
	p.vertices = append(p.vertices, *datastructure.NewVertex(coord.lat, coord.lon, id))
	p.nodeIDMap[osmNodeID] = id
	return id
}

// addSegment materializes both directed halves of one street segment.
func (p *OsmParser) addSegment(fromNodeID, toNodeID int64, geometry []datastructure.Coordinate,
	data datastructure.EdgeData, oneWay, reversed bool) {
	if fromNodeID == toNodeID {
		// degenerate loop segment
		return
	}

	dist := 0.0
	for i := 1; i < len(geometry); i++ {
		dist += geo.CalculateHaversineDistance(
			geometry[i-1].GetLat(), geometry[i-1].GetLon(),
			geometry[i].GetLat(), geometry[i].GetLon()) * 1000
	}

	tail := p.vertexFor(fromNodeID)
	head := p.vertexFor(toNodeID)

	forwardAllowed := !oneWay || !reversed
	backwardAllowed := !oneWay || reversed

	reversedGeometry := make([]datastructure.Coordinate, len(geometry))
	for i, c := range geometry {
		reversedGeometry[len(geometry)-1-i] = c
	}

	forwardID := datastructure.Index(len(p.outEdges))
	p.outEdges = append(p.outEdges, datastructure.NewOutEdge(
		forwardID, tail, head, dist, data, forwardAllowed, geometry))

	backwardID := datastructure.Index(len(p.outEdges))
	p.outEdges = append(p.outEdges, datastructure.NewOutEdge(
		backwardID, head, tail, dist, data, backwardAllowed, reversedGeometry))
}
