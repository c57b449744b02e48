package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrot/linalg"
)

// rotZ returns the rotation matrix of angle a about the Z axis.
func rotZ(a float64) linalg.Mat3[float64] {
	s, c := math.Sin(a), math.Cos(a)

	return linalg.Mat3[float64]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func TestMat3_MulIdentity(t *testing.T) {
	id := linalg.Identity3[float64]()
	m := rotZ(0.3)

	// Identity is neutral on both sides.
	require.Equal(t, m, id.Mul(m))
	require.Equal(t, m, m.Mul(id))
}

func TestMat3_MulAgainstKnownProduct(t *testing.T) {
	a := linalg.Mat3[float64]{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	b := linalg.Mat3[float64]{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}
	want := linalg.Mat3[float64]{
		{30, 24, 18},
		{84, 69, 54},
		{138, 114, 90},
	}
	require.Equal(t, want, a.Mul(b))
}

func TestMat3_MulVec(t *testing.T) {
	// 90° about Z sends x̂ to ŷ.
	m := rotZ(math.Pi / 2)
	got := m.MulVec(linalg.Vec3[float64]{1, 0, 0})
	require.True(t, got.ApproxEqual(linalg.Vec3[float64]{0, 1, 0}, 1e-15))
}

func TestMat3_TransposeTraceDet(t *testing.T) {
	m := linalg.Mat3[float64]{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	}

	// 1) Transpose is an involution.
	require.Equal(t, m, m.Transpose().Transpose())

	// 2) Trace is the diagonal sum.
	require.Equal(t, 16.0, m.Trace())

	// 3) Determinant by hand: this matrix has det −3.
	require.InDelta(t, -3.0, m.Det(), 1e-12)

	// 4) Rotations keep det = +1.
	require.InDelta(t, 1.0, rotZ(1.1).Det(), 1e-15)
}

func TestMat3_Col(t *testing.T) {
	m := linalg.Mat3[float64]{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	require.Equal(t, linalg.Vec3[float64]{2, 5, 8}, m.Col(1))
}

func TestMat3_IsSpecialOrthogonal(t *testing.T) {
	// 1) A rotation passes.
	require.True(t, rotZ(0.7).IsSpecialOrthogonal(1e-12))

	// 2) A reflection is orthogonal but has det −1: rejected.
	reflect := linalg.Mat3[float64]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -1},
	}
	require.False(t, reflect.IsSpecialOrthogonal(1e-12))

	// 3) A scaled rotation is not orthonormal: rejected.
	require.False(t, rotZ(0.7).Scale(2).IsSpecialOrthogonal(1e-12))
}

func TestMat3_IsSkewSymmetric(t *testing.T) {
	skew := linalg.Mat3[float64]{
		{0, -3, 2},
		{3, 0, -1},
		{-2, 1, 0},
	}
	require.True(t, skew.IsSkewSymmetric(0))
	require.False(t, linalg.Identity3[float64]().IsSkewSymmetric(1e-12))
}

func TestMat3_ApproxEqual(t *testing.T) {
	m := rotZ(0.25)
	n := m
	n[1][2] += 5e-7

	require.True(t, m.ApproxEqual(n, 1e-6))
	require.False(t, m.ApproxEqual(n, 1e-8))
}
