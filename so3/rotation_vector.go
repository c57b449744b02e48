// Package so3: rotation-vector representation and the numerical policy for
// the group's Exp/Log formulas.
//
// A rotation vector is the rotation's unit axis scaled by its angle — the
// coordinates of the Lie algebra so(3). Its two canonical converters are
// the Rodrigues exponential (ToCanonical) and the matrix logarithm
// (FromCanonical); both have removable singularities that are handled here:
//
//   - θ < smallAngle: second-order Taylor branches. The threshold is √ε of
//     the scalar width, where the dropped θ² terms fall below one ulp.
//   - θ within piWindow of π (Log only): the skew part of the matrix, which
//     normally carries the axis, vanishes as sin θ ≈ π−θ and its rounding
//     noise is amplified by 1/sin θ. The axis is recovered from the dominant
//     column of (R+I)/2 = aaᵀ + O(π−θ) instead, with the sign fixed by the
//     residual skew part. At θ = π exactly the two preimages ±πa are
//     equivalent and the dominant-column sign is kept.

package so3

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// smallAngle is the Taylor-branch threshold: √ε for the scalar width.
func smallAngle[S linalg.Scalar]() S {
	return linalg.Sqrt(linalg.Eps[S]())
}

// piWindow is the half-width of the θ ≈ π branch of the matrix logarithm.
// The skew-part formula's axis error grows as ε/(π−θ) while the
// dominant-column method's grows as (π−θ); the curves cross at √ε, so that
// is where the branch switches.
func piWindow[S linalg.Scalar]() S {
	return linalg.Sqrt(linalg.Eps[S]())
}

// RotationVector stores a rotation as axis·angle in a single 3-vector.
// The zero value IS a valid rotation (the identity). Angles are not wrapped:
// V of length θ+2π encodes the same rotation as length θ and converts to the
// same canonical matrix, but compares unequal raw-data-wise.
type RotationVector[S linalg.Scalar] struct {
	V linalg.Vec3[S]
}

// ToCanonical applies the Rodrigues formula
// R = I + sinθ·K + (1−cosθ)·K², K = Hat(V/θ).
func (r RotationVector[S]) ToCanonical() linalg.Mat3[S] {
	theta := r.V.Norm()
	if theta < smallAngle[S]() {
		// R = I + Hat(v) + Hat(v)²/2, exact to second order.
		k := Hat(r.V)

		return linalg.Identity3[S]().Add(k).Add(k.Mul(k).Scale(0.5))
	}

	k := Hat(r.V.Scale(1 / theta))
	sin, cos := linalg.Sin(theta), linalg.Cos(theta)

	return linalg.Identity3[S]().Add(k.Scale(sin)).Add(k.Mul(k).Scale(1 - cos))
}

// FromCanonical computes the matrix logarithm, returning axis·θ with
// θ ∈ [0, π]. See the package-file comment for the branch policy.
func (RotationVector[S]) FromCanonical(m linalg.Mat3[S]) RotationVector[S] {
	// skew = sinθ·axis; trace = 1 + 2cosθ. θ via atan2, never bare acos.
	skew := Vee(m.Sub(m.Transpose())).Scale(0.5)
	cos := linalg.Clamp((m.Trace()-1)/2, -1, 1)
	sin := skew.Norm()
	theta := linalg.Atan2(sin, cos)

	switch {
	case theta < smallAngle[S]():
		// θ/sinθ = 1 + θ²/6 + O(θ⁴).
		return RotationVector[S]{V: skew.Scale(1 + theta*theta/6)}

	case theta > S(math.Pi)-piWindow[S]():
		// Axis from the dominant column of B = (R+I)/2 ≈ aaᵀ.
		b := m.Add(linalg.Identity3[S]()).Scale(0.5)
		k := 0
		if b[1][1] > b[k][k] {
			k = 1
		}
		if b[2][2] > b[k][k] {
			k = 2
		}
		axis := b.Col(k).Scale(1 / linalg.Sqrt(b[k][k])).Normalized()
		if skew.Dot(axis) < 0 {
			axis = axis.Scale(-1)
		}

		return RotationVector[S]{V: axis.Scale(theta)}

	default:
		return RotationVector[S]{V: skew.Scale(theta / sin)}
	}
}

// Identity returns the zero vector, the identity rotation.
func (RotationVector[S]) Identity() RotationVector[S] {
	return RotationVector[S]{}
}

// Random returns a Haar-uniform rotation drawn from rng.
func (RotationVector[S]) Random(rng *rand.Rand) RotationVector[S] {
	return randomQuaternion[S](rng).rotationVector()
}

// Compose multiplies through the quaternion form: rotation vectors have no
// closed-form product of their own (the BCH series does not truncate).
func (r RotationVector[S]) Compose(other RotationVector[S]) RotationVector[S] {
	return r.quaternion().Compose(other.quaternion()).rotationVector()
}

// Inverse negates the vector: exp(−v) = exp(v)⁻¹.
func (r RotationVector[S]) Inverse() RotationVector[S] {
	return RotationVector[S]{V: r.V.Scale(-1)}
}

// IsCanonical reports false: the canonical representation is RotationMatrix.
func (RotationVector[S]) IsCanonical() bool {
	return false
}

// convertDirect accepts the sources with a closed-form path to a rotation
// vector, skipping the canonical pivot.
func (RotationVector[S]) convertDirect(src any) (RotationVector[S], bool) {
	switch s := src.(type) {
	case Quaternion[S]:
		return s.rotationVector(), true
	case AxisAngle[S]:
		return s.rotationVector(), true
	}

	return RotationVector[S]{}, false
}

// quaternion returns the unit quaternion exp(V/2) via the half-angle
// formulas, with a Taylor branch matching the package policy.
func (r RotationVector[S]) quaternion() Quaternion[S] {
	theta := r.V.Norm()
	if theta < smallAngle[S]() {
		// cos(θ/2) = 1 − θ²/8 + O(θ⁴); sin(θ/2)/θ = 1/2 − θ²/48 + O(θ⁴).
		half := S(0.5) - theta*theta/48

		return Quaternion[S]{
			W: 1 - theta*theta/8,
			X: r.V[0] * half,
			Y: r.V[1] * half,
			Z: r.V[2] * half,
		}
	}

	k := linalg.Sin(theta/2) / theta

	return Quaternion[S]{
		W: linalg.Cos(theta / 2),
		X: r.V[0] * k,
		Y: r.V[1] * k,
		Z: r.V[2] * k,
	}
}
