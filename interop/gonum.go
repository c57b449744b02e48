// Package interop: gonum adapters (num/quat and spatial/r3).

package interop

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvlrot/linalg"
	"github.com/katalvlaran/lvlrot/so3"
)

// GonumQuat converts a rotation quaternion to gonum's quat.Number.
func GonumQuat(q so3.Quaternion[float64]) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// FromGonumQuat converts gonum's quat.Number to a rotation quaternion.
// The coefficients are copied as-is; gonum quaternions used as rotations
// are expected to be unit norm already.
func FromGonumQuat(n quat.Number) so3.Quaternion[float64] {
	return so3.Quaternion[float64]{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// SpatialVec converts a linalg vector to gonum's spatial/r3.Vec.
func SpatialVec(v linalg.Vec3[float64]) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// FromSpatialVec converts gonum's spatial/r3.Vec to a linalg vector.
func FromSpatialVec(v r3.Vec) linalg.Vec3[float64] {
	return linalg.Vec3[float64]{v.X, v.Y, v.Z}
}

// SpatialRotation converts a rotation quaternion to gonum's r3.Rotation
// (which is a quaternion under the hood, scalar-first as well).
func SpatialRotation(q so3.Quaternion[float64]) r3.Rotation {
	return r3.Rotation(GonumQuat(q))
}

// FromSpatialRotation converts gonum's r3.Rotation to a rotation quaternion.
func FromSpatialRotation(r r3.Rotation) so3.Quaternion[float64] {
	return FromGonumQuat(quat.Number(r))
}
