package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Scene conventions: Z is vertical, Y is the default up direction for
// primitives whose axis is horizontal.
var (
	worldY = r3.Vector{X: 0, Y: 1, Z: 0}
	worldZ = r3.Vector{X: 0, Y: 0, Z: 1}
)

const parallelEpsilon = 1e-9

// RescaledTo returns v scaled to the given magnitude. A zero vector is
// returned unchanged since it carries no direction to scale along.
func RescaledTo(v r3.Vector, magnitude float64) r3.Vector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	return v.Mul(magnitude / norm)
}

// RotateVectorAboutAxis rotates v about the given axis by angle radians,
// following the right-hand rule. The axis need not be normalized, but it must
// be nonzero.
func RotateVectorAboutAxis(v, axis r3.Vector, angle float64) r3.Vector {
	aa := &R4AA{Theta: angle, RX: axis.X, RY: axis.Y, RZ: axis.Z}
	q := aa.ToQuat()
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// PerpendicularUp returns a unit vector perpendicular to axis to serve as a
// reference frame's up direction: world Y projected onto the plane normal to
// axis, or world Z when the axis runs along Y itself.
func PerpendicularUp(axis r3.Vector) r3.Vector {
	norm := axis.Norm()
	if norm == 0 {
		return worldY
	}
	unit := axis.Mul(1 / norm)
	reference := worldY
	if math.Abs(math.Abs(unit.Dot(worldY))-1) < parallelEpsilon {
		reference = worldZ
	}
	projected := reference.Sub(unit.Mul(reference.Dot(unit)))
	return projected.Normalize()
}
