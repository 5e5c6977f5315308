package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n", len(g.vertices), len(g.outEdges), len(g.streetNames))

	for vId := 0; vId < len(g.vertices); vId++ {
		v := g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s\n", v.id, latF, lonF)
	}

	for _, e := range g.outEdges {
		distF := strconv.FormatFloat(e.dist, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %d %s %t %d %d %t %d\n",
			e.edgeId, e.tail, e.head, distF, e.entryAllowed,
			e.data.nameId, e.data.roadClassification.priority,
			e.data.roadClassification.link, len(e.geometry))
		for _, c := range e.geometry {
			latF := strconv.FormatFloat(c.Lat, 'f', -1, 64)
			lonF := strconv.FormatFloat(c.Lon, 'f', -1, 64)
			fmt.Fprintf(w, "%s %s\n", latF, lonF)
		}
	}

	// street names may contain spaces, one per line
	for _, name := range g.streetNames {
		fmt.Fprintf(w, "%s\n", name)
	}

	return w.Flush()
}

func parseVertex(line string) (Vertex, error) {
	tokens := fields(line)
	if len(tokens) != 3 {
		return Vertex{}, fmt.Errorf("malformed vertex line: %q", line)
	}
	id, err := ParseIndex(tokens[0])
	if err != nil {
		return Vertex{}, err
	}
	lat, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Vertex{}, err
	}
	lon, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Vertex{}, err
	}
	return *NewVertex(lat, lon, id), nil
}

func parseOutEdgeHeader(line string) (OutEdge, int, error) {
	tokens := fields(line)
	if len(tokens) != 9 {
		return OutEdge{}, 0, fmt.Errorf("malformed edge line: %q", line)
	}

	edgeId, err := ParseIndex(tokens[0])
	if err != nil {
		return OutEdge{}, 0, err
	}
	tail, err := ParseIndex(tokens[1])
	if err != nil {
		return OutEdge{}, 0, err
	}
	head, err := ParseIndex(tokens[2])
	if err != nil {
		return OutEdge{}, 0, err
	}
	dist, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return OutEdge{}, 0, err
	}
	entryAllowed, err := strconv.ParseBool(tokens[4])
	if err != nil {
		return OutEdge{}, 0, err
	}
	nameId, err := strconv.ParseInt(tokens[5], 10, 32)
	if err != nil {
		return OutEdge{}, 0, err
	}
	priority, err := strconv.ParseUint(tokens[6], 10, 8)
	if err != nil {
		return OutEdge{}, 0, err
	}
	link, err := strconv.ParseBool(tokens[7])
	if err != nil {
		return OutEdge{}, 0, err
	}
	numGeometry, err := strconv.Atoi(tokens[8])
	if err != nil {
		return OutEdge{}, 0, err
	}

	data := NewEdgeData(NewRoadClassificationRaw(uint8(priority), link), int32(nameId))
	edge := NewOutEdge(edgeId, tail, head, dist, data, entryAllowed, nil)
	return edge, numGeometry, nil
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)

	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("malformed graph header: %q", line)
	}

	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}
	numNames, err := ParseIndex(tokens[2])
	if err != nil {
		return nil, err
	}

	vertices := make([]Vertex, numVertices)
	for i := 0; i < int(numVertices); i++ {
		vertexLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		vertices[i], err = parseVertex(vertexLine)
		if err != nil {
			return nil, err
		}
	}

	outEdges := make([]OutEdge, numEdges)
	for i := 0; i < int(numEdges); i++ {
		edgeLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		edge, numGeometry, err := parseOutEdgeHeader(edgeLine)
		if err != nil {
			return nil, err
		}

		geometry := make([]Coordinate, numGeometry)
		for j := 0; j < numGeometry; j++ {
			geomLine, err := util.ReadLine(br)
			if err != nil {
				return nil, err
			}
			geomTokens := fields(geomLine)
			if len(geomTokens) != 2 {
				return nil, fmt.Errorf("malformed geometry line: %q", geomLine)
			}
			lat, err := strconv.ParseFloat(geomTokens[0], 64)
			if err != nil {
				return nil, err
			}
			lon, err := strconv.ParseFloat(geomTokens[1], 64)
			if err != nil {
				return nil, err
			}
			geometry[j] = NewCoordinate(lat, lon)
		}
		edge.geometry = geometry
		outEdges[i] = edge
	}

	streetNames := make([]string, numNames)
	for i := 0; i < int(numNames); i++ {
		streetNames[i], err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
	}

	return NewGraph(vertices, outEdges, streetNames), nil
}
