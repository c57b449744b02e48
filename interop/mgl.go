// Package interop: go-gl/mathgl adapters.
// mathgl matrices are flat column-major arrays (m[col*3+row]); the Mat3
// adapters transpose while copying. Quaternions carry (W, V) and need no
// reordering.

package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvlrot/linalg"
	"github.com/katalvlaran/lvlrot/so3"
)

// MGL64Quat converts a rotation quaternion to mgl64.Quat.
func MGL64Quat(q so3.Quaternion[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromMGL64Quat converts mgl64.Quat to a rotation quaternion.
func FromMGL64Quat(q mgl64.Quat) so3.Quaternion[float64] {
	return so3.Quaternion[float64]{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// MGL64Mat3 converts a row-major linalg matrix to a column-major mgl64.Mat3.
func MGL64Mat3(m linalg.Mat3[float64]) mgl64.Mat3 {
	return mgl64.Mat3{
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	}
}

// FromMGL64Mat3 converts a column-major mgl64.Mat3 to a row-major linalg
// matrix.
func FromMGL64Mat3(m mgl64.Mat3) linalg.Mat3[float64] {
	return linalg.Mat3[float64]{
		{m[0], m[3], m[6]},
		{m[1], m[4], m[7]},
		{m[2], m[5], m[8]},
	}
}

// MGL32Quat converts a float32 rotation quaternion to mgl32.Quat.
func MGL32Quat(q so3.Quaternion[float32]) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// FromMGL32Quat converts mgl32.Quat to a float32 rotation quaternion.
func FromMGL32Quat(q mgl32.Quat) so3.Quaternion[float32] {
	return so3.Quaternion[float32]{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// MGL32Mat3 converts a row-major float32 linalg matrix to a column-major
// mgl32.Mat3.
func MGL32Mat3(m linalg.Mat3[float32]) mgl32.Mat3 {
	return mgl32.Mat3{
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	}
}

// FromMGL32Mat3 converts a column-major mgl32.Mat3 to a row-major float32
// linalg matrix.
func FromMGL32Mat3(m mgl32.Mat3) linalg.Mat3[float32] {
	return linalg.Mat3[float32]{
		{m[0], m[3], m[6]},
		{m[1], m[4], m[7]},
		{m[2], m[5], m[8]},
	}
}
