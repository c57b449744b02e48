// Package so3: tangent-space maps.
// Exp and Log connect so(3) — tangent 3-vectors at the identity — to group
// elements by routing through the rotation-vector representation, whose
// converters own the closed-form Rodrigues formulas and their numerical
// stabilization. Hat and Vee realize the matrix form of the Lie algebra.

package so3

import "github.com/katalvlaran/lvlrot/linalg"

// Exp maps a tangent vector to the group element exp([t]ₓ) expressed in
// representation R. The tangent vector IS rotation-vector raw data, so the
// map is a single conversion. Exp of the zero vector is the identity.
func Exp[R Representation[S, R], S linalg.Scalar](t linalg.Vec3[S]) SO3[S, R] {
	rv := SO3[S, RotationVector[S]]{rep: RotationVector[S]{V: t}}

	return Convert[R, S, RotationVector[S]](rv)
}

// Log maps a group element to its tangent vector, the inverse of Exp up to
// the 2π ambiguity: the returned angle is in [0, π]. Rotations by exactly π
// have two antipodal preimages; the rotation-vector converter picks one
// deterministically.
func Log[S linalg.Scalar, R Representation[S, R]](e SO3[S, R]) linalg.Vec3[S] {
	return Convert[RotationVector[S], S, R](e).rep.V
}

// Hat returns the skew-symmetric matrix [v]ₓ, the matrix of the linear map
// u ↦ v × u. Hat output satisfies m = −mᵀ exactly for every input.
func Hat[S linalg.Scalar](v linalg.Vec3[S]) linalg.Mat3[S] {
	return linalg.Mat3[S]{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

// Vee extracts the 3-vector from a skew-symmetric matrix, inverting Hat:
// Vee(Hat(v)) == v for all v. Defined for any input: it reads one fixed
// off-diagonal entry per component, so for a non-skew-symmetric m it
// returns those entries without any validity check.
func Vee[S linalg.Scalar](m linalg.Mat3[S]) linalg.Vec3[S] {
	return linalg.Vec3[S]{m[2][1], m[0][2], m[1][0]}
}
