// Package so3: group algebra over one fixed representation.
// Same-representation operands resolve to methods here; mixed
// representations go through the package functions in convert.go
// (Compose, Equal, ApproxEqual), which convert the right operand first.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// Mul returns the group product e · other.
// Both operands share the representation R; for mixed representations use
// Compose. Complexity: representation-dependent, O(1) in all cases.
func (e SO3[S, R]) Mul(other SO3[S, R]) SO3[S, R] {
	return SO3[S, R]{rep: e.rep.Compose(other.rep)}
}

// MulInPlace replaces e with the group product e · other.
func (e *SO3[S, R]) MulInPlace(other SO3[S, R]) {
	e.rep = e.rep.Compose(other.rep)
}

// Inverse returns the group inverse of e. e itself is unchanged.
func (e SO3[S, R]) Inverse() SO3[S, R] {
	return SO3[S, R]{rep: e.rep.Inverse()}
}

// Invert replaces e with its group inverse.
func (e *SO3[S, R]) Invert() {
	e.rep = e.rep.Inverse()
}

// SetIdentity replaces e with the group identity.
func (e *SO3[S, R]) SetIdentity() {
	e.rep = e.rep.Identity()
}

// IsIdentity reports whether e is the identity rotation within
// DefaultTolerance, judged on the canonical rotation matrix so that
// equivalent raw encodings (e.g. a rotation vector of length 2π) are
// recognized regardless of representation.
func (e SO3[S, R]) IsIdentity() bool {
	return e.rep.ToCanonical().ApproxEqual(linalg.Identity3[S](), S(DefaultTolerance))
}

// SetRandom replaces e with a uniformly distributed rotation drawn from rng.
// Panics if rng is nil.
func (e *SO3[S, R]) SetRandom(rng *rand.Rand) {
	e.rep = e.rep.Random(rng)
}

// Equal reports exact raw-data equality of two elements of the same
// representation. For cross-representation or tolerance-based comparison
// use the package functions Equal and ApproxEqual.
func (e SO3[S, R]) Equal(other SO3[S, R]) bool {
	return e.rep == other.rep
}

// ApproxEqual reports whether e and other encode the same rotation within
// tol, compared componentwise on canonical rotation matrices. The
// representation-neutral invariant makes the answer independent of how
// either operand happens to be stored.
func (e SO3[S, R]) ApproxEqual(other SO3[S, R], tol S) bool {
	return e.rep.ToCanonical().ApproxEqual(other.rep.ToCanonical(), tol)
}

// Identity returns the group identity in representation R.
func Identity[S linalg.Scalar, R Representation[S, R]]() SO3[S, R] {
	var r R

	return SO3[S, R]{rep: r.Identity()}
}

// Random returns a uniformly distributed rotation (Haar measure on SO(3))
// in representation R, drawn from rng. Deterministic for a fixed seed.
// Panics if rng is nil.
func Random[S linalg.Scalar, R Representation[S, R]](rng *rand.Rand) SO3[S, R] {
	var r R

	return SO3[S, R]{rep: r.Random(rng)}
}
