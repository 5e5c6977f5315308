package datastructure

type Index uint32

const InvalidIndex = Index(^uint32(0))

// EmptyNameID marks an edge without a street name.
const EmptyNameID = int32(-1)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

type Vertex struct {
	lat float64
	lon float64
	id  Index
}

func NewVertex(lat, lon float64, id Index) *Vertex {
	return &Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

// EdgeData is the read-only view of an edge the turn classifier consumes.
type EdgeData struct {
	roadClassification RoadClassification
	nameId             int32
}

func NewEdgeData(classification RoadClassification, nameId int32) EdgeData {
	return EdgeData{
		roadClassification: classification,
		nameId:             nameId,
	}
}

func (d EdgeData) GetRoadClassification() RoadClassification {
	return d.roadClassification
}

func (d EdgeData) GetNameId() int32 {
	return d.nameId
}

// OutEdge is one directed half of a way segment between two junction
// vertices. The reverse direction of a oneway street is still materialized
// so the intersection view can show it, but with entryAllowed = false.
type OutEdge struct {
	edgeId       Index
	tail         Index
	head         Index
	dist         float64 // meter
	data         EdgeData
	entryAllowed bool
	reverseEdge  Index // InvalidIndex when the geometry has no paired half
	geometry     []Coordinate
}

func NewOutEdge(edgeId, tail, head Index, dist float64, data EdgeData,
	entryAllowed bool, geometry []Coordinate) OutEdge {
	return OutEdge{
		edgeId:       edgeId,
		tail:         tail,
		head:         head,
		dist:         dist,
		data:         data,
		entryAllowed: entryAllowed,
		reverseEdge:  InvalidIndex,
		geometry:     geometry,
	}
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetTail() Index {
	return e.tail
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetDist() float64 {
	return e.dist
}

func (e *OutEdge) GetData() EdgeData {
	return e.data
}

func (e *OutEdge) IsEntryAllowed() bool {
	return e.entryAllowed
}

func (e *OutEdge) GetReverseEdge() Index {
	return e.reverseEdge
}

func (e *OutEdge) SetReverseEdge(reverse Index) {
	e.reverseEdge = reverse
}

func (e *OutEdge) GetGeometry() []Coordinate {
	return e.geometry
}

// Graph is the node-based road graph the guidance extractor walks: junction
// vertices plus directed edges carrying road classification and street name.
type Graph struct {
	vertices    []Vertex
	outEdges    []OutEdge
	vertexEdges [][]Index // outgoing edge ids per vertex
	streetNames []string
}

func NewGraph(vertices []Vertex, outEdges []OutEdge, streetNames []string) *Graph {
	g := &Graph{
		vertices:    vertices,
		outEdges:    outEdges,
		vertexEdges: make([][]Index, len(vertices)),
		streetNames: streetNames,
	}
	for i := range outEdges {
		e := &g.outEdges[i]
		g.vertexEdges[e.tail] = append(g.vertexEdges[e.tail], e.edgeId)
	}
	g.linkReverseEdges()
	return g
}

// linkReverseEdges pairs every edge with its opposite-direction half so the
// intersection generator can find the u-turn road in O(1).
func (g *Graph) linkReverseEdges() {
	type endpoints struct {
		tail, head Index
	}
	byEndpoints := make(map[endpoints]Index, len(g.outEdges))
	for i := range g.outEdges {
		e := &g.outEdges[i]
		byEndpoints[endpoints{e.tail, e.head}] = e.edgeId
	}
	for i := range g.outEdges {
		e := &g.outEdges[i]
		if reverse, ok := byEndpoints[endpoints{e.head, e.tail}]; ok {
			e.reverseEdge = reverse
		}
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetVertex(u Index) *Vertex {
	return &g.vertices[u]
}

func (g *Graph) GetOutEdge(edgeId Index) *OutEdge {
	return &g.outEdges[edgeId]
}

func (g *Graph) GetEdgeData(edgeId Index) EdgeData {
	return g.outEdges[edgeId].data
}

func (g *Graph) GetStreetName(edgeId Index) string {
	nameId := g.outEdges[edgeId].data.nameId
	if nameId == EmptyNameID {
		return ""
	}
	return g.streetNames[nameId]
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.vertexEdges[u])
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for _, edgeId := range g.vertexEdges[u] {
		handle(&g.outEdges[edgeId])
	}
}

func (g *Graph) GetStreetNames() []string {
	return g.streetNames
}
