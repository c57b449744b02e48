// Package so3: the representation-conversion engine.
//
// Routing, in priority order:
//
//  1. Identity conversion — source and target are the same concrete type;
//     the raw data is returned unchanged. Guaranteed, so repeated
//     conversions are idempotent.
//  2. Direct converter — the target type recognizes the source type via the
//     unexported convertDirect hook and applies a closed-form formula
//     (quaternion ↔ rotation vector ↔ axis-angle, euler → quaternion).
//  3. Canonical pivot — ToCanonical on the source, FromCanonical on the
//     target. Always available; two hops, so k representations need only
//     2k converters instead of k².
//
// Conversions are pure functions of their input. No conversion fails for
// valid-rotation input; behavior for invalid raw data is documented per
// representation type.

package so3

import "github.com/katalvlaran/lvlrot/linalg"

// directConvertible is the optional hook a representation implements to
// accept specific source representations without the canonical pivot.
// The receiver is a zero value; implementations must only inspect src.
type directConvertible[Self any] interface {
	convertDirect(src any) (Self, bool)
}

// Convert re-expresses e in representation To. The target type parameter is
// first so call sites name only it: Convert[Quaternion[float64]](e).
func Convert[To Representation[S, To], S linalg.Scalar, From Representation[S, From]](e SO3[S, From]) SO3[S, To] {
	// 1) Identity conversion: From and To are the same concrete type.
	//    The assertion compiles to a constant-foldable type check.
	if same, ok := any(e.rep).(To); ok {
		return SO3[S, To]{rep: same}
	}

	var to To
	// 2) Direct pair: the target recognizes the source type.
	if d, ok := any(to).(directConvertible[To]); ok {
		if out, hit := d.convertDirect(e.rep); hit {
			return SO3[S, To]{rep: out}
		}
	}

	// 3) Fallback: two-hop pivot through the canonical rotation matrix.
	return SO3[S, To]{rep: to.FromCanonical(e.rep.ToCanonical())}
}

// Coordinates returns e's raw data converted to representation To —
// the per-representation coordinate tuple of the same rotation.
func Coordinates[To Representation[S, To], S linalg.Scalar, From Representation[S, From]](e SO3[S, From]) To {
	return Convert[To, S, From](e).rep
}

// Compose returns the group product a · b for operands of possibly
// different representations. The result keeps the left operand's
// representation; the right operand is converted as needed first.
func Compose[S linalg.Scalar, R Representation[S, R], O Representation[S, O]](a SO3[S, R], b SO3[S, O]) SO3[S, R] {
	return a.Mul(Convert[R, S, O](b))
}

// Equal reports exact cross-representation equality: both operands
// re-expressed as canonical rotation matrices and compared entrywise.
// Exact, not tolerant — use ApproxEqual after round trips.
func Equal[S linalg.Scalar, R1 Representation[S, R1], R2 Representation[S, R2]](a SO3[S, R1], b SO3[S, R2]) bool {
	return a.ToRotationMatrix() == b.ToRotationMatrix()
}

// ApproxEqual reports whether a and b encode the same rotation within tol,
// compared componentwise on canonical rotation matrices.
func ApproxEqual[S linalg.Scalar, R1 Representation[S, R1], R2 Representation[S, R2]](a SO3[S, R1], b SO3[S, R2], tol S) bool {
	return a.ToRotationMatrix().ApproxEqual(b.ToRotationMatrix(), tol)
}

// ToRotationMatrix returns e re-expressed as the canonical 3×3 rotation
// matrix (the convert-to-canonical entry point).
func (e SO3[S, R]) ToRotationMatrix() linalg.Mat3[S] {
	return e.rep.ToCanonical()
}

// FromRotationMatrix replaces e's raw data with the representation of the
// given canonical rotation matrix (the convert-from-canonical entry point).
// m is trusted to be a valid rotation; see the package comment on validity.
func (e *SO3[S, R]) FromRotationMatrix(m linalg.Mat3[S]) {
	e.rep = e.rep.FromCanonical(m)
}

// Canonical returns e re-expressed in the canonical representation.
// When R is already RotationMatrix[S] this is the identity conversion and
// returns the raw data unchanged.
func (e SO3[S, R]) Canonical() SO3[S, RotationMatrix[S]] {
	return Convert[RotationMatrix[S], S, R](e)
}
