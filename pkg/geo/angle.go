package geo

import (
	"math"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

// AngularDeviation. smaller angle between a and b on the circular domain
// [0,360). result in [0,180].
func AngularDeviation(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		return 360 - d
	}
	return d
}

/*
GetTurnDirection. map a turn angle in [0,360) to its direction modifier.
the bands are symmetric around going straight (180°):

	(0,60)     sharp right
	[60,140)   right
	[140,160)  slight right
	[160,200]  straight
	(200,220]  slight left
	(220,300]  left
	(300,340)  sharp left

everything else is the u-turn back onto the via edge.
*/
func GetTurnDirection(angle float64) datastructure.DirectionModifier {
	if angle > 0 && angle < 60 {
		return datastructure.SharpRight
	}
	if angle >= 60 && angle < 140 {
		return datastructure.Right
	}
	if angle >= 140 && angle < 160 {
		return datastructure.SlightRight
	}
	if angle >= 160 && angle <= 200 {
		return datastructure.Straight
	}
	if angle > 200 && angle <= 220 {
		return datastructure.SlightLeft
	}
	if angle > 220 && angle <= 300 {
		return datastructure.Left
	}
	if angle > 300 && angle < 340 {
		return datastructure.SharpLeft
	}
	return datastructure.UTurn
}

// DeviationFromStraight. angular deviation of a turn angle from going
// straight through.
func DeviationFromStraight(angle float64) float64 {
	return AngularDeviation(angle, pkg.STRAIGHT_ANGLE)
}

/*
BearingTo. menghitung sudut initial bearing untuk edge (p1,p2).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}

// TurnAngleFromBearings. turn angle of an outgoing road relative to the via
// edge, normalized into [0,360). a road pointing straight back along the via
// edge gets 0, straight through gets 180.
func TurnAngleFromBearings(viaBearing, roadBearing float64) float64 {
	angle := math.Mod(viaBearing-roadBearing+540, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
