package guidance

import "github.com/lintang-b-s/guidancex/pkg/datastructure"

// Graph is the read-only view of the node-based road graph that guidance
// needs. The classifier itself only touches edge data and street names; the
// intersection generator also walks the adjacency.
type Graph interface {
	GetEdgeData(edgeId datastructure.Index) datastructure.EdgeData
	GetStreetName(edgeId datastructure.Index) string
	GetVertex(u datastructure.Index) *datastructure.Vertex
	GetOutEdge(edgeId datastructure.Index) *datastructure.OutEdge
	GetOutDegree(u datastructure.Index) int
	ForOutEdgesOf(u datastructure.Index, handle func(e *datastructure.OutEdge))
}
