package geo

import (
	"github.com/golang/geo/s2"
)

const earthRadiusMeter = 6371000.0

// EarthDistanceMeter. great-circle distance between two coordinates on the
// s2 sphere, in meter.
func EarthDistanceMeter(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusMeter
}

// ProjectPointToLine. project snap onto the segment (pointA, pointB) on the
// sphere, returning the projected coordinate.
func ProjectPointToLine(aLat, aLon, bLat, bLon, snapLat, snapLon float64) (float64, float64) {
	pointAS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(aLat, aLon))
	pointBS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(bLat, bLon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snapLat, snapLon))
	projection := s2.Project(snapS2, pointAS2, pointBS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees()
}
