package spatialindex

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[EdgeEndpoint]
}

// EdgeEndpoint is an r-tree leaf: one directed edge reachable near the query
// point. The classify endpoints resolve a (lat, lon, bearing) query to a via
// edge through this index.
type EdgeEndpoint struct {
	edgeId datastructure.Index
	tail   datastructure.Index
	head   datastructure.Index
}

func (ee EdgeEndpoint) GetEdgeId() datastructure.Index {
	return ee.edgeId
}

func (ee EdgeEndpoint) GetTail() datastructure.Index {
	return ee.tail
}

func (ee EdgeEndpoint) GetHead() datastructure.Index {
	return ee.head
}

func newEdgeEndpoint(edgeId, tail, head datastructure.Index) EdgeEndpoint {
	return EdgeEndpoint{
		edgeId: edgeId,
		tail:   tail,
		head:   head,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[EdgeEndpoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree, with each leaf having bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")

	numEdges := graph.NumberOfEdges()
	for edgeId := 0; edgeId < numEdges; edgeId++ {
		e := graph.GetOutEdge(datastructure.Index(edgeId))
		from := graph.GetVertex(e.GetTail())
		to := graph.GetVertex(e.GetHead())

		lowerFromLat, lowerFromLon := geo.GetDestinationPoint(
			from.GetLat(), from.GetLon(), 225, boundingBoxRadius)
		upperFromLat, upperFromLon := geo.GetDestinationPoint(
			from.GetLat(), from.GetLon(), 45, boundingBoxRadius)

		lowerToLat, lowerToLon := geo.GetDestinationPoint(
			to.GetLat(), to.GetLon(), 225, boundingBoxRadius)
		upperToLat, upperToLon := geo.GetDestinationPoint(
			to.GetLat(), to.GetLon(), 45, boundingBoxRadius)

		minLat := util.Min(lowerFromLat, lowerToLat)
		minLon := util.Min(lowerFromLon, lowerToLon)
		maxLat := util.Max(upperFromLat, upperToLat)
		maxLon := util.Max(upperFromLon, upperToLon)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
			newEdgeEndpoint(e.GetEdgeId(), e.GetTail(), e.GetHead()))
	}

	log.Info("R-tree spatial index built.")
}

// SearchWithinRadius search for all edge endpoints within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []EdgeEndpoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]EdgeEndpoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data EdgeEndpoint) bool {
			results = append(results, data)
			if len(results) >= 20 {
				return false
			}
			return true
		})
	return results
}
