package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundFloat(t *testing.T) {
	require.InDelta(t, 90.25, RoundFloat(90.254, 2), 1e-9)
	require.InDelta(t, 90.26, RoundFloat(90.256, 2), 1e-9)
	require.InDelta(t, 0.333, RoundFloat(1.0/3.0, 3), 1e-9)
	require.InDelta(t, 180.0, RoundFloat(180.0, 2), 1e-9)
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 2, Min(2, 5))
	require.Equal(t, 5, Max(2, 5))
	require.InDelta(t, -6.2, Min(-6.1, -6.2), 1e-9)
	require.InDelta(t, -6.1, Max(-6.1, -6.2), 1e-9)
	require.Equal(t, "a", Min("a", "b"))
}
