// Package lvlrot is a representation-agnostic toolkit for the 3D rotation
// group SO(3) — the rotational-kinematics primitive for robotics and
// physics-simulation math.
//
// 🌀 What is lvlrot?
//
//	A generic, statically dispatched library that brings together:
//		• Five concrete rotation representations: rotation matrix (canonical),
//		  unit quaternion, rotation vector, axis-angle, intrinsic ZYX Euler angles
//		• One uniform element type so3.SO3[S, R] over float32 or float64
//		• Group algebra: composition, inversion, identity, uniform sampling,
//		  exact and tolerance-based equality
//		• Conversion between any two representations, pivoting through the
//		  canonical rotation matrix when no direct converter exists
//		• Exp/Log maps between SO(3) and its Lie algebra so(3), plus the
//		  Hat/Vee isomorphism between 3-vectors and skew-symmetric matrices
//		• Interop adapters for gonum, golang/geo and go-gl/mathgl types
//
// ✨ Why choose lvlrot?
//
//   - Compile-time polymorphism – the representation is a type parameter,
//     so every operation resolves statically; no interface tables at runtime
//   - Scales linearly – a new representation needs only its two converters
//     against the canonical rotation matrix, never k² pairwise converters
//   - Deterministic – explicit *rand.Rand wherever randomness appears
//   - Pure values – no locks, no goroutines, no hidden allocation
//
// Everything is organized under three subpackages:
//
//	linalg/  — fixed-size Vec3/Mat3 primitives and the generic scalar shim
//	so3/     — the rotation group: representations, conversion, algebra, Exp/Log
//	interop/ — adapters to gonum quat/spatial, golang/geo/r3 and mathgl types
//
// Quick example:
//
//	q := so3.Random[float64, so3.Quaternion[float64]](rng)
//	m := so3.Convert[so3.RotationMatrix[float64]](q)
//	fmt.Println(so3.ApproxEqual(q, m, so3.DefaultTolerance)) // true
//
//	go get github.com/katalvlaran/lvlrot/so3
package lvlrot
