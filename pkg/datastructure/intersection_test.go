package datastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectionValid(t *testing.T) {
	testCases := []struct {
		name   string
		angles []float64
		want   bool
	}{
		{name: "sorted with u-turn first", angles: []float64{0, 90, 180, 270}, want: true},
		{name: "single u-turn", angles: []float64{0}, want: true},
		{name: "unsorted", angles: []float64{0, 180, 90}, want: false},
		{name: "first road not u-turn", angles: []float64{45, 90, 180}, want: false},
		{name: "empty", angles: nil, want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			in := make(Intersection, 0, len(tt.angles))
			for i, angle := range tt.angles {
				in = append(in, NewConnectedRoad(Index(i), angle, 0, true))
			}
			require.Equal(t, tt.want, in.Valid())
		})
	}
}

func TestConnectedRoadMirror(t *testing.T) {
	r := NewConnectedRoad(1, 90, 0, true)
	r.SetInstruction(NewTurnInstruction(TurnBasic, Right))

	r.Mirror()
	require.InDelta(t, 270.0, r.GetAngle(), 1e-9)
	require.Equal(t, Left, r.GetInstruction().GetDirectionModifier())

	r.Mirror()
	require.InDelta(t, 90.0, r.GetAngle(), 1e-9)
	require.Equal(t, Right, r.GetInstruction().GetDirectionModifier())
}

func TestMirrorKeepsUTurnInPlace(t *testing.T) {
	r := NewConnectedRoad(0, 0, 0, true)
	r.SetInstruction(NewTurnInstruction(TurnBasic, UTurn))

	r.Mirror()
	require.InDelta(t, 0.0, r.GetAngle(), 1e-9)
	require.Equal(t, UTurn, r.GetInstruction().GetDirectionModifier())
}

func TestFindClosestTurn(t *testing.T) {
	in := Intersection{
		NewConnectedRoad(0, 0, 0, true),
		NewConnectedRoad(1, 95, 0, true),
		NewConnectedRoad(2, 185, 0, true),
		NewConnectedRoad(3, 265, 0, true),
	}

	require.Equal(t, 2, in.FindClosestTurn(180))
	require.Equal(t, 1, in.FindClosestTurn(90))
	require.Equal(t, 0, in.FindClosestTurn(350))
}

func TestEntryCounting(t *testing.T) {
	in := Intersection{
		NewConnectedRoad(0, 0, 0, false),
		NewConnectedRoad(1, 90, 0, true),
		NewConnectedRoad(2, 180, 0, false),
		NewConnectedRoad(3, 270, 0, true),
	}

	require.True(t, in.HasValidEntries(1, 1))
	require.False(t, in.HasValidEntries(1, 2))
	require.Equal(t, 2, in.CountValidEntries(1, 4))
	require.Equal(t, 1, in.CountValidEntries(1, 2))
}

func TestDirectionModifierMirror(t *testing.T) {
	require.Equal(t, Left, Right.Mirror())
	require.Equal(t, SharpLeft, SharpRight.Mirror())
	require.Equal(t, SlightRight, SlightLeft.Mirror())
	require.Equal(t, Straight, Straight.Mirror())
	require.Equal(t, UTurn, UTurn.Mirror())
}

func TestObviousByRoadClass(t *testing.T) {
	secondary := NewRoadClassificationRaw(PRIORITY_SECONDARY, false)
	motorway := NewRoadClassificationRaw(PRIORITY_MOTORWAY, false)
	serviceRoad := NewRoadClassificationRaw(PRIORITY_LINK_ROAD, false)

	// continuing on the same class while clearly outranking the rival
	require.True(t, ObviousByRoadClass(motorway, motorway, secondary))
	// rival is a low priority road
	require.True(t, ObviousByRoadClass(secondary, secondary, serviceRoad))
	// equal classes are never obvious
	require.False(t, ObviousByRoadClass(secondary, secondary, secondary))
	// a low priority candidate is never obvious
	require.False(t, ObviousByRoadClass(secondary, serviceRoad, secondary))
}

func TestCanBeSeenAsFork(t *testing.T) {
	secondary := NewRoadClassificationRaw(PRIORITY_SECONDARY, false)
	secondaryLink := NewRoadClassificationRaw(PRIORITY_SECONDARY_LINK, true)
	motorway := NewRoadClassificationRaw(PRIORITY_MOTORWAY, false)

	require.True(t, CanBeSeenAsFork(secondary, secondary))
	require.True(t, CanBeSeenAsFork(secondary, secondaryLink))
	require.False(t, CanBeSeenAsFork(motorway, secondary))
}
