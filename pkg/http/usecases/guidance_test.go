package usecases

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClassifyTurns(t *testing.T) {
	// ClassifyTurns builds its own graph view from the request, so the
	// service needs neither a graph nor a spatial index.
	service := NewGuidanceService(zap.NewNop(), nil, nil, 0.2)

	via := RawRoad{EntryAllowed: true, HighwayType: "secondary", StreetName: "Jalan Sudirman"}
	got, err := service.ClassifyTurns(via, []RawRoad{
		{Angle: 95, EntryAllowed: true, HighwayType: "secondary", StreetName: "Jalan Thamrin"},
		{Angle: 180, EntryAllowed: true, HighwayType: "secondary", StreetName: "Jalan Sudirman"},
		{Angle: 0, EntryAllowed: true, HighwayType: "secondary", StreetName: "Jalan Sudirman"},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// roads come back sorted by angle, u-turn first
	require.Equal(t, uint32(2), got[0].EdgeId)
	require.Equal(t, "uturn", got[0].DirectionModifier)
	require.False(t, got[0].Suggested)

	require.Equal(t, uint32(0), got[1].EdgeId)
	require.Equal(t, "turn", got[1].TurnType)
	require.Equal(t, "right", got[1].DirectionModifier)
	require.False(t, got[1].Suggested)

	// the name continues straight through, so the turn is suppressed and the
	// road is flagged as the suggested continuation
	require.Equal(t, uint32(1), got[2].EdgeId)
	require.Equal(t, "suppressed", got[2].TurnType)
	require.Equal(t, "straight", got[2].DirectionModifier)
	require.True(t, got[2].Suggested)
}

func TestClassifyTurnsRejectsBadInput(t *testing.T) {
	service := NewGuidanceService(zap.NewNop(), nil, nil, 0.2)
	via := RawRoad{EntryAllowed: true, HighwayType: "secondary"}

	t.Run("missing u-turn road", func(t *testing.T) {
		_, err := service.ClassifyTurns(via, []RawRoad{
			{Angle: 95, EntryAllowed: true, HighwayType: "secondary"},
			{Angle: 180, EntryAllowed: true, HighwayType: "secondary"},
		})
		var domainErr *util.Error
		require.ErrorAs(t, err, &domainErr)
		require.Equal(t, util.ErrBadParamInput, domainErr.Code())
	})

	t.Run("empty intersection", func(t *testing.T) {
		_, err := service.ClassifyTurns(via, nil)
		var domainErr *util.Error
		require.ErrorAs(t, err, &domainErr)
		require.Equal(t, util.ErrBadParamInput, domainErr.Code())
	})
}
