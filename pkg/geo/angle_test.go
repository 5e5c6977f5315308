package geo

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

func TestAngularDeviation(t *testing.T) {
	testCases := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{name: "same angle", a: 90, b: 90, want: 0},
		{name: "simple difference", a: 100, b: 60, want: 40},
		{name: "wraps around zero", a: 350, b: 10, want: 20},
		{name: "opposite", a: 0, b: 180, want: 180},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, AngularDeviation(tt.a, tt.b), 1e-9)
			require.InDelta(t, tt.want, AngularDeviation(tt.b, tt.a), 1e-9)
		})
	}
}

func TestGetTurnDirection(t *testing.T) {
	testCases := []struct {
		angle float64
		want  datastructure.DirectionModifier
	}{
		{angle: 0, want: datastructure.UTurn},
		{angle: 30, want: datastructure.SharpRight},
		{angle: 60, want: datastructure.Right},
		{angle: 90, want: datastructure.Right},
		{angle: 140, want: datastructure.SlightRight},
		{angle: 160, want: datastructure.Straight},
		{angle: 180, want: datastructure.Straight},
		{angle: 200, want: datastructure.Straight},
		{angle: 210, want: datastructure.SlightLeft},
		{angle: 270, want: datastructure.Left},
		{angle: 310, want: datastructure.SharpLeft},
		{angle: 350, want: datastructure.UTurn},
	}

	for _, tt := range testCases {
		require.Equal(t, tt.want, GetTurnDirection(tt.angle), "angle %f", tt.angle)
	}
}

func TestTurnAngleFromBearings(t *testing.T) {
	testCases := []struct {
		name        string
		viaBearing  float64
		roadBearing float64
		want        float64
	}{
		{name: "straight through", viaBearing: 0, roadBearing: 0, want: 180},
		{name: "back onto via edge", viaBearing: 0, roadBearing: 180, want: 0},
		{name: "right turn", viaBearing: 0, roadBearing: 90, want: 90},
		{name: "left turn", viaBearing: 0, roadBearing: 270, want: 270},
		{name: "heading east straight", viaBearing: 90, roadBearing: 90, want: 180},
		{name: "heading east right turn", viaBearing: 90, roadBearing: 180, want: 90},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, TurnAngleFromBearings(tt.viaBearing, tt.roadBearing), 1e-9)
		})
	}
}

func TestBearingTo(t *testing.T) {
	// due north along a meridian
	require.InDelta(t, 0, BearingTo(-6.2, 106.8, -6.1, 106.8), 0.5)
	// due east near the equator
	require.InDelta(t, 90, BearingTo(0, 106.8, 0, 106.9), 0.5)
	// due south
	require.InDelta(t, 180, BearingTo(-6.1, 106.8, -6.2, 106.8), 0.5)
}
