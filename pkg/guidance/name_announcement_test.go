package guidance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiresNameAnnounced(t *testing.T) {
	table := DefaultSuffixTable()

	testCases := []struct {
		name  string
		nameA string
		nameB string
		want  bool
	}{
		{name: "identical", nameA: "Market Street", nameB: "Market Street", want: false},
		{name: "case insensitive", nameA: "market street", nameB: "Market Street", want: false},
		{name: "abbreviated suffix", nameA: "Market Street", nameB: "Market St", want: false},
		{name: "split carriageway halves", nameA: "Main St NB", nameB: "Main St SB", want: false},
		{name: "leading direction", nameA: "North Main Street", nameB: "Main Street", want: false},
		{name: "different streets", nameA: "Market Street", nameB: "Mission Street", want: true},
		{name: "empty first", nameA: "", nameB: "Market Street", want: false},
		{name: "empty second", nameA: "Market Street", nameB: "", want: false},
		{name: "both empty", nameA: "", nameB: "", want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RequiresNameAnnounced(tt.nameA, tt.nameB, table))
		})
	}
}

func TestSuffixTableKeepsLastWord(t *testing.T) {
	table := DefaultSuffixTable()

	// a name made only of suffix words must not strip down to nothing
	require.True(t, RequiresNameAnnounced("Street", "Road", table))
	require.False(t, RequiresNameAnnounced("Street", "Street", table))
}
