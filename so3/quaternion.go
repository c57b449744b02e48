// Package so3: unit-quaternion representation.
// Matrix extraction assumes a unit quaternion; matrix ingestion uses
// Shepperd's dominant-pivot method and normalizes its output. Composition
// is the Hamilton product and does NOT re-normalize, so long products drift
// at floating-point speed — callers that chain many products can call
// Normalized at their own cadence.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// Quaternion stores a rotation as a scalar-first unit quaternion
// w + xi + yj + zk. q and −q encode the same rotation. The zero value is
// not a rotation; Identity is {W: 1}.
type Quaternion[S linalg.Scalar] struct {
	W, X, Y, Z S
}

// ToCanonical returns the rotation matrix of the quaternion.
// Assumes |q| = 1; a non-unit quaternion yields a scaled, non-orthonormal
// matrix that propagates silently.
func (q Quaternion[S]) ToCanonical() linalg.Mat3[S] {
	w, x, y, z := q.W, q.X, q.Y, q.Z

	return linalg.Mat3[S]{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// FromCanonical extracts a unit quaternion from a rotation matrix using
// Shepperd's method: the branch is picked by the dominant diagonal term so
// the divisor is always well away from zero. The result is normalized.
func (Quaternion[S]) FromCanonical(m linalg.Mat3[S]) Quaternion[S] {
	var q Quaternion[S]
	switch tr := m.Trace(); {
	case tr > 0:
		s := 2 * linalg.Sqrt(tr+1)
		q = Quaternion[S]{
			W: s / 4,
			X: (m[2][1] - m[1][2]) / s,
			Y: (m[0][2] - m[2][0]) / s,
			Z: (m[1][0] - m[0][1]) / s,
		}
	case m[0][0] >= m[1][1] && m[0][0] >= m[2][2]:
		s := 2 * linalg.Sqrt(1 + m[0][0] - m[1][1] - m[2][2])
		q = Quaternion[S]{
			W: (m[2][1] - m[1][2]) / s,
			X: s / 4,
			Y: (m[0][1] + m[1][0]) / s,
			Z: (m[0][2] + m[2][0]) / s,
		}
	case m[1][1] >= m[2][2]:
		s := 2 * linalg.Sqrt(1 + m[1][1] - m[0][0] - m[2][2])
		q = Quaternion[S]{
			W: (m[0][2] - m[2][0]) / s,
			X: (m[0][1] + m[1][0]) / s,
			Y: s / 4,
			Z: (m[1][2] + m[2][1]) / s,
		}
	default:
		s := 2 * linalg.Sqrt(1 + m[2][2] - m[0][0] - m[1][1])
		q = Quaternion[S]{
			W: (m[1][0] - m[0][1]) / s,
			X: (m[0][2] + m[2][0]) / s,
			Y: (m[1][2] + m[2][1]) / s,
			Z: s / 4,
		}
	}

	return q.Normalized()
}

// Identity returns the identity rotation 1 + 0i + 0j + 0k.
func (Quaternion[S]) Identity() Quaternion[S] {
	return Quaternion[S]{W: 1}
}

// Random returns a Haar-uniform rotation drawn from rng.
func (Quaternion[S]) Random(rng *rand.Rand) Quaternion[S] {
	return randomQuaternion[S](rng)
}

// Compose returns the Hamilton product q · other.
func (q Quaternion[S]) Compose(other Quaternion[S]) Quaternion[S] {
	return Quaternion[S]{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Inverse returns the conjugate, which inverts any unit quaternion.
func (q Quaternion[S]) Inverse() Quaternion[S] {
	return Quaternion[S]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// IsCanonical reports false: the canonical representation is RotationMatrix.
func (Quaternion[S]) IsCanonical() bool {
	return false
}

// Norm returns the quaternion's Euclidean norm, 1 for valid rotation data.
func (q Quaternion[S]) Norm() S {
	return linalg.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalized returns the quaternion scaled to unit norm.
// The zero quaternion is returned unchanged.
func (q Quaternion[S]) Normalized() Quaternion[S] {
	n := q.Norm()
	if n == 0 {
		return q
	}

	return Quaternion[S]{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// convertDirect accepts the sources with a closed-form path to a
// quaternion, skipping the canonical pivot.
func (Quaternion[S]) convertDirect(src any) (Quaternion[S], bool) {
	switch s := src.(type) {
	case RotationVector[S]:
		return s.quaternion(), true
	case AxisAngle[S]:
		return s.quaternion(), true
	case EulerAngles[S]:
		return s.quaternion(), true
	}

	return Quaternion[S]{}, false
}

// rotationVector returns the so(3) coordinates of the quaternion with the
// angle in [0, π] (the sign of W is folded into the vector part first, so
// q and −q map to the same result).
func (q Quaternion[S]) rotationVector() RotationVector[S] {
	w, v := q.W, linalg.Vec3[S]{q.X, q.Y, q.Z}
	if w < 0 {
		w, v = -w, v.Scale(-1)
	}

	n := v.Norm()
	if n < smallAngle[S]() {
		// θ = 2·atan2(n, w) ≈ (2/w)·n with a third-order correction;
		// the factor applies to v directly since v = n·axis.
		return RotationVector[S]{V: v.Scale((2 / w) * (1 - (n*n)/(3*w*w)))}
	}

	theta := 2 * linalg.Atan2(n, w)

	return RotationVector[S]{V: v.Scale(theta / n)}
}
