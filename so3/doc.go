// Package so3 models the 3D rotation group SO(3) generically over its
// concrete representation.
//
// The central type is SO3[S, R]: a rotation element whose scalar type S is
// float32 or float64 and whose representation R is one of
//
//   - RotationMatrix[S]  — 3×3 matrix, the canonical representation
//   - Quaternion[S]      — unit quaternion, scalar-first (W, X, Y, Z)
//   - RotationVector[S]  — axis scaled by angle, the so(3) coordinates
//   - AxisAngle[S]       — unit axis plus separate angle
//   - EulerAngles[S]     — intrinsic Z-Y′-X″ (yaw-pitch-roll) angles
//
// Because R is a type parameter bound by the Representation constraint,
// every operation resolves at compile time to the concrete representation:
// there is no interface dispatch on the hot path, and a representation never
// pays for capabilities it does not use.
//
// # Conversion
//
// Convert[To](e) re-expresses e in any other representation. Identity
// conversion (same representation in and out) is guaranteed to return the
// raw data unchanged; selected pairs convert directly (quaternion ↔
// rotation vector ↔ axis-angle, euler → quaternion); every remaining pair
// pivots through the canonical rotation matrix in two hops. Adding a new
// representation therefore costs exactly two converters, not 2k.
//
// # Group algebra
//
// Mul/Inverse/Identity/Random and exact or tolerance-based equality are
// available as methods for same-representation operands and as package
// functions (Compose, Equal, ApproxEqual) for mixed representations, where
// the right operand is converted first. Cross-representation equality is
// defined on canonical rotation matrices.
//
// # Tangent space
//
// Exp and Log map between so(3) tangent vectors and group elements through
// the rotation-vector representation; Hat and Vee realize the isomorphism
// between 3-vectors and skew-symmetric matrices.
//
// # Validity
//
// Raw data is never validated or re-normalized by this package. Identity,
// Random, Exp and FromRotationMatrix (of a valid matrix) are the
// guaranteed-valid constructors; SetRepData accepts whatever it is given.
// Opt-in validators live on the representation types and in linalg.
//
// All types are plain values: no locks, no goroutines, no heap state.
// Concurrent use of distinct elements is safe; sharing one element across
// goroutines requires caller-side synchronization.
package so3
