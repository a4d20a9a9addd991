package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
)

// horizontalEpsilon is the threshold under which the frame's normal is
// considered to lie in the horizontal plane.
const horizontalEpsilon = 1e-4

// ArmAngle solves for the signed angle, in radians, of a link's rotation
// within its reference plane. xVector is the link direction and zVector the
// frame's normal (x cross up). The elevation of xVector out of the horizontal
// plane comes from asin, which cannot distinguish angles on either side of 90
// degrees; the sign of zVector's vertical component disambiguates which side
// the link is on:
//
//	X-Y | Z | result
//	 +  | + | a
//	 +  | - | 180-a
//	 -  | + | a
//	 -  | - | -(180+a)
func ArmAngle(xVector, zVector r3.Vector) float64 {
	// rounding can push the ratio just past unity, which asin rejects
	ratio := xVector.Z / xVector.Norm()
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	elevation := math.Asin(ratio)
	xyPlaneSign := elevation > 0

	var refZSign bool
	if math.Abs(zVector.Z) < horizontalEpsilon {
		refZSign = !xyPlaneSign
	} else {
		refZSign = zVector.Z > 0
	}

	switch {
	case xyPlaneSign && !refZSign:
		return math.Pi - elevation
	case !xyPlaneSign && !refZSign:
		return -(math.Pi + elevation)
	default:
		return elevation
	}
}
