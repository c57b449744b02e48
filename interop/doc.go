// Package interop bridges lvlrot values and the rotation/vector types of
// the wider Go ecosystem, so downstream code can hand rotations to gonum,
// golang/geo or go-gl/mathgl pipelines without rewriting coefficients by
// hand.
//
// Adapters are pure coefficient shuffles: no normalization, no validation,
// no tolerance logic. Conventions handled here so callers never think about
// them:
//
//   - gonum's quat.Number and spatial/r3.Rotation are scalar-first, like
//     so3.Quaternion — a field-by-field copy.
//   - go-gl/mathgl matrices are column-major; lvlrot matrices row-major.
//     The Mat3 adapters transpose during the copy.
//
// The ecosystem types are float64-only (mgl32 aside), so adapters are
// provided for the float64 instantiations of lvlrot types and, where the
// target library has a float32 twin, for float32 as well.
package interop
