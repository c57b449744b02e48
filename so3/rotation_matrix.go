// Package so3: the canonical representation.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// RotationMatrix stores a rotation as a 3×3 matrix. It is the canonical
// representation: the conversion pivot and the common ground for
// cross-representation equality.
//
// M is trusted to be special orthogonal (MᵀM = I, det M = +1); nothing here
// re-orthonormalizes. The zero value is the zero matrix, not a rotation.
// Use linalg.Mat3.IsSpecialOrthogonal for an opt-in check.
type RotationMatrix[S linalg.Scalar] struct {
	M linalg.Mat3[S]
}

// ToCanonical returns the stored matrix unchanged.
func (r RotationMatrix[S]) ToCanonical() linalg.Mat3[S] {
	return r.M
}

// FromCanonical wraps the given matrix unchanged.
func (RotationMatrix[S]) FromCanonical(m linalg.Mat3[S]) RotationMatrix[S] {
	return RotationMatrix[S]{M: m}
}

// Identity returns the identity rotation.
func (RotationMatrix[S]) Identity() RotationMatrix[S] {
	return RotationMatrix[S]{M: linalg.Identity3[S]()}
}

// Random returns a Haar-uniform rotation drawn from rng.
func (RotationMatrix[S]) Random(rng *rand.Rand) RotationMatrix[S] {
	return RotationMatrix[S]{M: randomQuaternion[S](rng).ToCanonical()}
}

// Compose returns the matrix product r · other.
func (r RotationMatrix[S]) Compose(other RotationMatrix[S]) RotationMatrix[S] {
	return RotationMatrix[S]{M: r.M.Mul(other.M)}
}

// Inverse returns the transpose, which inverts any orthogonal matrix.
func (r RotationMatrix[S]) Inverse() RotationMatrix[S] {
	return RotationMatrix[S]{M: r.M.Transpose()}
}

// IsCanonical reports true: RotationMatrix is the canonical representation.
func (RotationMatrix[S]) IsCanonical() bool {
	return true
}
