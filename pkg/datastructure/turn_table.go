package datastructure

// TurnTable holds the classified intersection of every directed edge of the
// graph, indexed by via edge id. It is the artifact the extractor produces
// and the engine serves.
type TurnTable struct {
	intersections []Intersection
}

func NewTurnTable(numEdges int) *TurnTable {
	return &TurnTable{
		intersections: make([]Intersection, numEdges),
	}
}

func (t *TurnTable) Set(viaEdge Index, intersection Intersection) {
	t.intersections[viaEdge] = intersection
}

func (t *TurnTable) Get(viaEdge Index) Intersection {
	return t.intersections[viaEdge]
}

func (t *TurnTable) NumberOfViaEdges() int {
	return len(t.intersections)
}
