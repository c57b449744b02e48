// Package so3: element type, representation constraint and shared constants.
// This file contains the compile-time contract every concrete representation
// satisfies, and the SO3 wrapper that turns any representation into a full
// group element. Group algebra lives in algebra.go, conversion in
// convert.go, tangent-space maps in tangent.go.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// Dim is the dimension of the rotation group's ambient space.
const Dim = 3

// DefaultTolerance is the componentwise tolerance used by IsIdentity and
// recommended for ApproxEqual after representation round trips.
const DefaultTolerance = 1e-6

// Representation is the compile-time contract of one concrete rotation
// representation. Self is the implementing type itself, so every method
// stays fully typed and the compiler monomorphizes all call sites.
//
// The two converters against the canonical rotation matrix are the only
// conversion obligations: the engine in convert.go derives every
// representation pair from them, pivoting through the canonical form.
//
// Implementations are plain value types. None of the methods validates its
// input; raw data that does not encode a rotation propagates silently.
type Representation[S linalg.Scalar, Self any] interface {
	comparable

	// ToCanonical re-expresses the raw data as the canonical 3×3 rotation
	// matrix. Pure; the receiver is not modified.
	ToCanonical() linalg.Mat3[S]

	// FromCanonical builds the representation from a canonical rotation
	// matrix. The receiver's own data is ignored (factory-style method).
	FromCanonical(m linalg.Mat3[S]) Self

	// Identity returns the group identity in this representation.
	Identity() Self

	// Random returns a uniformly distributed rotation (Haar measure),
	// drawn from rng. Panics if rng is nil (programmer error).
	Random(rng *rand.Rand) Self

	// Compose returns the group product self · other for operands of the
	// same representation. True SO(3) composition, never raw concatenation.
	Compose(other Self) Self

	// Inverse returns the group inverse.
	Inverse() Self

	// IsCanonical reports whether this representation is the canonical one
	// (the rotation matrix). A per-type constant, never data-dependent.
	IsCanonical() bool
}

// SO3 is a rotation group element with scalar type S stored in
// representation R. The zero value holds R's zero raw data, which is NOT a
// valid rotation for most representations; construct via New, Identity,
// Random, Exp or FromRotationMatrix.
type SO3[S linalg.Scalar, R Representation[S, R]] struct {
	rep R
}

// New wraps raw representation data in a group element.
// The data is trusted as-is; see the package comment on validity.
func New[S linalg.Scalar, R Representation[S, R]](rep R) SO3[S, R] {
	return SO3[S, R]{rep: rep}
}

// RepData returns the element's raw representation data.
func (e SO3[S, R]) RepData() R {
	return e.rep
}

// SetRepData replaces the element's raw representation data, unvalidated.
func (e *SO3[S, R]) SetRepData(rep R) {
	e.rep = rep
}

// IsCanonical reports whether R is the canonical representation.
// Constant per instantiation.
func (e SO3[S, R]) IsCanonical() bool {
	return e.rep.IsCanonical()
}
