package datastructure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurnTableRoundtrip(t *testing.T) {
	table := NewTurnTable(2)

	first := Intersection{
		NewConnectedRoad(1, 0, 270.5, false),
		NewConnectedRoad(2, 90.25, 0.5, true),
		NewConnectedRoad(3, 180, 90, true),
	}
	first[0].SetInstruction(NewTurnInstruction(TurnInvalid, UTurn))
	first[1].SetInstruction(NewTurnInstruction(TurnBasic, Right))
	first[2].SetInstruction(NewTurnInstruction(TurnSuppressed, Straight))
	table.Set(0, first)

	second := Intersection{
		NewConnectedRoad(0, 0, 90, true),
	}
	second[0].SetInstruction(NewTurnInstruction(TurnBasic, UTurn))
	table.Set(1, second)

	filename := filepath.Join(t.TempDir(), "turns.guidance")
	require.NoError(t, table.WriteTurnTable(filename))

	got, err := ReadTurnTable(filename)
	require.NoError(t, err)

	require.Equal(t, table.NumberOfViaEdges(), got.NumberOfViaEdges())
	require.Equal(t, table.Get(0), got.Get(0))
	require.Equal(t, table.Get(1), got.Get(1))
}
