package datastructure

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

func fields(s string) []string {

	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

func (t *TurnTable) WriteTurnTable(filename string) error {
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

	fmt.Fprintf(w, "%d\n", len(t.intersections))

	for viaEdge, intersection := range t.intersections {
		fmt.Fprintf(w, "%d %d\n", viaEdge, len(intersection))
		for _, road := range intersection {
			angleF := strconv.FormatFloat(road.angle, 'f', -1, 64)
			bearingF := strconv.FormatFloat(road.bearing, 'f', -1, 64)

			fmt.Fprintf(w, "%d %s %s %t %d %d\n",
				road.eid, angleF, bearingF, road.entryAllowed,
				road.instruction.turnType, road.instruction.directionModifier)
		}
	}

	return w.Flush()
}

func parseConnectedRoad(line string) (ConnectedRoad, error) {
	tokens := fields(line)
	if len(tokens) != 6 {
		return ConnectedRoad{}, fmt.Errorf("malformed turn table road line: %q", line)
	}

	eid, err := ParseIndex(tokens[0])
	if err != nil {
		return ConnectedRoad{}, err
	}
	angle, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return ConnectedRoad{}, err
	}
	bearing, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return ConnectedRoad{}, err
	}
	entryAllowed, err := strconv.ParseBool(tokens[3])
	if err != nil {
		return ConnectedRoad{}, err
	}
	turnType, err := strconv.ParseUint(tokens[4], 10, 8)
	if err != nil {
		return ConnectedRoad{}, err
	}
	modifier, err := strconv.ParseUint(tokens[5], 10, 8)
	if err != nil {
		return ConnectedRoad{}, err
	}

	road := NewConnectedRoad(eid, angle, bearing, entryAllowed)
	road.SetInstruction(NewTurnInstruction(TurnType(turnType), DirectionModifier(modifier)))
	return road, nil
}

func ReadTurnTable(filename string) (*TurnTable, error) {
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
	numEdges, err := ParseIndex(line)
	if err != nil {
		return nil, err
	}

	table := NewTurnTable(int(numEdges))

	for i := 0; i < int(numEdges); i++ {
		headerLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tokens := fields(headerLine)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("malformed turn table header line: %q", headerLine)
		}
		viaEdge, err := ParseIndex(tokens[0])
		if err != nil {
			return nil, err
		}
		numRoads, err := ParseIndex(tokens[1])
		if err != nil {
			return nil, err
		}

		intersection := make(Intersection, 0, numRoads)
		for j := 0; j < int(numRoads); j++ {
			roadLine, err := util.ReadLine(br)
			if err != nil {
				return nil, err
			}
			road, err := parseConnectedRoad(roadLine)
			if err != nil {
				return nil, err
			}
			intersection = append(intersection, road)
		}
		table.Set(viaEdge, intersection)
	}

	return table, nil
}
