package guidance

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

const viaEdgeID = datastructure.Index(100)

type fakeGraph struct {
	data  map[datastructure.Index]datastructure.EdgeData
	names map[datastructure.Index]string
}

func (g *fakeGraph) GetEdgeData(edgeId datastructure.Index) datastructure.EdgeData {
	return g.data[edgeId]
}

func (g *fakeGraph) GetStreetName(edgeId datastructure.Index) string {
	return g.names[edgeId]
}

func (g *fakeGraph) GetVertex(u datastructure.Index) *datastructure.Vertex { return nil }

func (g *fakeGraph) GetOutEdge(edgeId datastructure.Index) *datastructure.OutEdge { return nil }

func (g *fakeGraph) GetOutDegree(u datastructure.Index) int { return 0 }

func (g *fakeGraph) ForOutEdgesOf(u datastructure.Index, handle func(e *datastructure.OutEdge)) {}

func edgeData(hwType pkg.OsmHighwayType) datastructure.EdgeData {
	return datastructure.NewEdgeData(
		datastructure.NewRoadClassification(hwType), datastructure.EmptyNameID)
}

// newFakeGraph assigns class hwTypes[i] to edge id i and the via class to
// edge viaEdgeID.
func newFakeGraph(viaType pkg.OsmHighwayType, hwTypes ...pkg.OsmHighwayType) *fakeGraph {
	g := &fakeGraph{
		data:  make(map[datastructure.Index]datastructure.EdgeData),
		names: make(map[datastructure.Index]string),
	}
	g.data[viaEdgeID] = edgeData(viaType)
	for i, hw := range hwTypes {
		g.data[datastructure.Index(i)] = edgeData(hw)
	}
	return g
}

func road(eid datastructure.Index, angle float64, entryAllowed bool) datastructure.ConnectedRoad {
	return datastructure.NewConnectedRoad(eid, angle, 0, entryAllowed)
}

func intersectionFromAngles(angles ...float64) datastructure.Intersection {
	in := make(datastructure.Intersection, 0, len(angles))
	for i, angle := range angles {
		in = append(in, road(datastructure.Index(i), angle, true))
	}
	return in
}

func cloneIntersection(in datastructure.Intersection) datastructure.Intersection {
	out := make(datastructure.Intersection, len(in))
	copy(out, in)
	return out
}

func TestOneWayDeadEnd(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0))

	require.Len(t, got, 1)
	require.False(t, got[0].GetInstruction().IsAssigned())
}

func TestTwoWayStraight(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 180))

	require.Equal(t, datastructure.UTurn, got[0].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnSuppressed, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Straight, got[1].GetInstruction().GetDirectionModifier())
}

func TestTwoWayOntoRamp(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.MOTORWAY_LINK)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	// 155 sits inside the slight-right band, just short of straight
	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 155))

	require.Equal(t, datastructure.TurnOnRamp, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.SlightRight, got[1].GetInstruction().GetDirectionModifier())
}

func TestEndOfRoad(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 90, 270))

	require.Equal(t, datastructure.TurnEndOfRoad, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Right, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnEndOfRoad, got[2].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Left, got[2].GetInstruction().GetDirectionModifier())
}

func TestEndOfRoadOntoRamp(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.MOTORWAY_LINK, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 90, 270))

	require.Equal(t, datastructure.TurnOnRamp, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Right, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnEndOfRoad, got[2].GetInstruction().GetTurnType())
}

func TestThreeWayFork(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 170, 195))

	require.Equal(t, datastructure.TurnFork, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.SlightRight, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnFork, got[2].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.SlightLeft, got[2].GetInstruction().GetDirectionModifier())
}

func TestThreeWayObviousContinuation(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	g.names[viaEdgeID] = "Jalan Sudirman"
	g.names[1] = "Jalan Sudirman"
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 180, 95))

	require.Equal(t, datastructure.TurnContinue, got[1].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Straight, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnBasic, got[2].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Right, got[2].GetInstruction().GetDirectionModifier())
}

func TestFourWaySkewWithBlockedStraight(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	in := intersectionFromAngles(0, 90, 181, 270)
	in[2] = road(2, 181, false)

	got := handler.Compute(viaEdgeID, in)

	require.Equal(t, datastructure.Right, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnInvalid, got[2].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.Straight, got[2].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.Left, got[3].GetInstruction().GetDirectionModifier())
}

func TestComplexFiveWayForkOnLeft(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY_LINK, pkg.SECONDARY_LINK, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	got := handler.Compute(viaEdgeID, intersectionFromAngles(0, 80, 170, 190, 280))

	require.Equal(t, datastructure.TurnFork, got[2].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.SlightRight, got[2].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.TurnFork, got[3].GetInstruction().GetTurnType())
	require.Equal(t, datastructure.SlightLeft, got[3].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.Right, got[1].GetInstruction().GetDirectionModifier())
	require.Equal(t, datastructure.Left, got[4].GetInstruction().GetDirectionModifier())
}

func TestClassifyCoversEveryRoad(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	testCases := []struct {
		name   string
		angles []float64
	}{
		{name: "two way", angles: []float64{0, 180}},
		{name: "t junction", angles: []float64{0, 90, 270}},
		{name: "fork", angles: []float64{0, 170, 195}},
		{name: "four way", angles: []float64{0, 90, 180, 270}},
		{name: "five way", angles: []float64{0, 80, 170, 190, 280}},
		{name: "skewed", angles: []float64{0, 30, 80, 130, 210, 300}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := handler.Compute(viaEdgeID, intersectionFromAngles(tt.angles...))
			for i := range got {
				require.True(t, got[i].GetInstruction().IsAssigned(),
					"road %d (%v) left without instruction", i, got[i])
			}
		})
	}
}

func TestClassifyDeterministicAndIdempotent(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	in := intersectionFromAngles(0, 80, 170, 190, 280)

	first := handler.Compute(viaEdgeID, cloneIntersection(in))
	second := handler.Compute(viaEdgeID, cloneIntersection(in))
	require.Equal(t, first, second)

	again := handler.Compute(viaEdgeID, cloneIntersection(first))
	require.Equal(t, first, again)
}

func TestUTurnInstructionOnFirstRoad(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	for _, angles := range [][]float64{
		{0, 180},
		{0, 90, 270},
		{0, 90, 180, 270},
	} {
		got := handler.Compute(viaEdgeID, intersectionFromAngles(angles...))
		require.Equal(t, datastructure.UTurn, got[0].GetInstruction().GetDirectionModifier())
	}
}

// mirrorIntersection flips every road to the other side and reverses the
// order of everything but the u-turn, producing the mirror image junction.
func mirrorIntersection(in datastructure.Intersection) datastructure.Intersection {
	out := cloneIntersection(in)
	for i := range out {
		out[i].Mirror()
	}
	for l, r := 1, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

func TestMirrorSymmetry(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	testCases := []struct {
		name   string
		angles []float64
	}{
		{name: "t junction", angles: []float64{0, 90, 270}},
		{name: "fork", angles: []float64{0, 170, 195}},
		{name: "four way", angles: []float64{0, 100, 180, 260}},
		{name: "five way", angles: []float64{0, 80, 170, 190, 280}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			in := intersectionFromAngles(tt.angles...)
			classifiedThenMirrored := mirrorIntersection(
				handler.Compute(viaEdgeID, cloneIntersection(in)))
			mirroredThenClassified := handler.Compute(viaEdgeID, mirrorIntersection(in))

			require.Len(t, mirroredThenClassified, len(classifiedThenMirrored))
			for i := range classifiedThenMirrored {
				require.Equal(t,
					classifiedThenMirrored[i].GetInstruction(),
					mirroredThenClassified[i].GetInstruction(),
					"road %d", i)
			}
		})
	}
}

func TestFindForkBounds(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY,
		pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	testCases := []struct {
		name     string
		angles   []float64
		wantFork bool
		wantSize int
	}{
		{name: "two way fork", angles: []float64{0, 170, 195}, wantFork: true, wantSize: 2},
		{name: "three way fork", angles: []float64{0, 90, 165, 180, 195, 270},
			wantFork: true, wantSize: 3},
		{name: "no fork at t junction", angles: []float64{0, 90, 270}, wantFork: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			in := intersectionFromAngles(tt.angles...)
			f, ok := handler.findFork(viaEdgeID, in)
			require.Equal(t, tt.wantFork, ok)
			if !ok {
				return
			}
			require.Equal(t, tt.wantSize, f.size)
			require.GreaterOrEqual(t, f.right, 1)
			require.Less(t, f.left, len(in))
		})
	}
}

func TestForkRejectedWhenEntryBlocked(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	in := intersectionFromAngles(0, 170, 195)
	in[2] = road(2, 195, false)

	_, ok := handler.findFork(viaEdgeID, in)
	require.False(t, ok)
}

func TestForkRejectedForMixedLinkClasses(t *testing.T) {
	g := newFakeGraph(pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY, pkg.SECONDARY_LINK)
	handler := NewTurnHandler(g, DefaultSuffixTable())

	_, ok := handler.findFork(viaEdgeID, intersectionFromAngles(0, 170, 195))
	require.False(t, ok)
}
