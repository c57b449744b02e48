// Package so3: axis-angle representation.
// Same information as a rotation vector, stored as a unit axis plus a
// separate angle. The split form keeps angles > π representable without
// conflating axis and magnitude, which some robotics interfaces require.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// defaultAxis is the axis reported for (near-)zero rotations, where the true
// axis is undefined. Any fixed unit vector works; X is the convention here.
func defaultAxis[S linalg.Scalar]() linalg.Vec3[S] {
	return linalg.Vec3[S]{1, 0, 0}
}

// AxisAngle stores a rotation as a unit Axis and an Angle in radians.
// Axis is trusted to be unit length (see Normalized); Angle is not wrapped.
// The zero value has a zero axis and is not a valid rotation; Identity
// carries the default X axis with a zero angle.
type AxisAngle[S linalg.Scalar] struct {
	Axis  linalg.Vec3[S]
	Angle S
}

// ToCanonical applies the Rodrigues formula with the stored axis.
// Assumes a unit axis; a non-unit axis yields a non-orthonormal matrix that
// propagates silently.
func (a AxisAngle[S]) ToCanonical() linalg.Mat3[S] {
	k := Hat(a.Axis)
	sin, cos := linalg.Sin(a.Angle), linalg.Cos(a.Angle)

	return linalg.Identity3[S]().Add(k.Scale(sin)).Add(k.Mul(k).Scale(1 - cos))
}

// FromCanonical extracts axis and angle through the matrix logarithm;
// the angle lands in [0, π] and a zero rotation gets the default axis.
func (AxisAngle[S]) FromCanonical(m linalg.Mat3[S]) AxisAngle[S] {
	return RotationVector[S]{}.FromCanonical(m).axisAngle()
}

// Identity returns a zero angle about the default axis.
func (AxisAngle[S]) Identity() AxisAngle[S] {
	return AxisAngle[S]{Axis: defaultAxis[S]()}
}

// Random returns a Haar-uniform rotation drawn from rng.
func (AxisAngle[S]) Random(rng *rand.Rand) AxisAngle[S] {
	return randomQuaternion[S](rng).rotationVector().axisAngle()
}

// Compose multiplies through the quaternion form.
func (a AxisAngle[S]) Compose(other AxisAngle[S]) AxisAngle[S] {
	return a.quaternion().Compose(other.quaternion()).rotationVector().axisAngle()
}

// Inverse negates the angle about the same axis.
func (a AxisAngle[S]) Inverse() AxisAngle[S] {
	return AxisAngle[S]{Axis: a.Axis, Angle: -a.Angle}
}

// IsCanonical reports false: the canonical representation is RotationMatrix.
func (AxisAngle[S]) IsCanonical() bool {
	return false
}

// Normalized returns the same rotation with the axis rescaled to unit
// length. The opt-in repair for axis data of drifting length; a zero axis
// is returned unchanged.
func (a AxisAngle[S]) Normalized() AxisAngle[S] {
	return AxisAngle[S]{Axis: a.Axis.Normalized(), Angle: a.Angle}
}

// convertDirect accepts the sources with a closed-form path to axis-angle,
// skipping the canonical pivot.
func (AxisAngle[S]) convertDirect(src any) (AxisAngle[S], bool) {
	switch s := src.(type) {
	case RotationVector[S]:
		return s.axisAngle(), true
	case Quaternion[S]:
		return s.rotationVector().axisAngle(), true
	}

	return AxisAngle[S]{}, false
}

// quaternion returns cos(θ/2) + sin(θ/2)·axis. Assumes a unit axis.
func (a AxisAngle[S]) quaternion() Quaternion[S] {
	sin, cos := linalg.Sin(a.Angle/2), linalg.Cos(a.Angle/2)

	return Quaternion[S]{W: cos, X: a.Axis[0] * sin, Y: a.Axis[1] * sin, Z: a.Axis[2] * sin}
}

// rotationVector collapses axis·angle into one vector.
func (a AxisAngle[S]) rotationVector() RotationVector[S] {
	return RotationVector[S]{V: a.Axis.Scale(a.Angle)}
}

// axisAngle splits a rotation vector; near-zero rotations keep their tiny
// angle but get the default axis, since the direction is undefined there.
func (r RotationVector[S]) axisAngle() AxisAngle[S] {
	theta := r.V.Norm()
	if theta < smallAngle[S]() {
		return AxisAngle[S]{Axis: defaultAxis[S](), Angle: theta}
	}

	return AxisAngle[S]{Axis: r.V.Scale(1 / theta), Angle: theta}
}
