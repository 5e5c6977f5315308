package geo

import (
	"github.com/twpayne/go-polyline"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
)

// PolylineFromCoords. encode edge geometry with the google polyline format.
func PolylineFromCoords(coords []datastructure.Coordinate) string {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(pairs))
}
