// Package linalg provides the fixed-size linear-algebra primitives consumed
// by the rotation packages: 3-component vectors, 3×3 matrices, and a scalar
// math shim generic over float32 and float64.
//
// The linalg package provides:
//
//   - Vec3[S] with addition, scaling, dot/cross products, norms, outer
//     product, and exact/tolerance comparison.
//   - Mat3[S] with multiplication, transpose, trace, determinant, and
//     exact/tolerance comparison.
//   - Opt-in structural validators (IsSpecialOrthogonal, IsSkewSymmetric):
//     nothing in this package validates implicitly.
//   - Sqrt/Sin/Cos/Asin/Atan2 dispatching to math (float64) or
//     github.com/chewxy/math32 (float32) without losing precision.
//
// All types are plain arrays: value semantics, zero heap allocation,
// deterministic loop orders. Indexing is compile-time bounded, so no
// operation in this package can fail.
package linalg
