// Package linalg: 3×3 matrix primitive.
// Mat3 is a row-major array of arrays; m[i][j] is row i, column j.
// All kernels use fixed i→j(→k) loop orders for determinism and allocate
// nothing beyond the returned value.

package linalg

// Mat3 is a row-major 3×3 matrix with scalar type S.
// The zero value is the zero matrix (NOT the identity).
type Mat3[S Scalar] [3][3]S

// Identity3 returns the 3×3 identity matrix.
func Identity3[S Scalar]() Mat3[S] {
	return Mat3[S]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Add returns m + n, elementwise.
func (m Mat3[S]) Add(n Mat3[S]) Mat3[S] {
	var out Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}

	return out
}

// Sub returns m − n, elementwise.
func (m Mat3[S]) Sub(n Mat3[S]) Mat3[S] {
	var out Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] - n[i][j]
		}
	}

	return out
}

// Scale returns t·m, elementwise.
func (m Mat3[S]) Scale(t S) Mat3[S] {
	var out Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = t * m[i][j]
		}
	}

	return out
}

// Mul returns the matrix product m·n.
// Complexity: O(27) multiply-adds, fixed i→j→k order.
func (m Mat3[S]) Mul(n Mat3[S]) Mat3[S] {
	var out Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum S
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	var out Vec3[S]
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// Transpose returns mᵀ.
func (m Mat3[S]) Transpose() Mat3[S] {
	var out Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
func (m Mat3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant via cofactor expansion along the first row.
func (m Mat3[S]) Det() S {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Col returns column j as a vector. j must be 0, 1 or 2.
func (m Mat3[S]) Col(j int) Vec3[S] {
	return Vec3[S]{m[0][j], m[1][j], m[2][j]}
}

// ApproxEqual reports whether every entry of m is within tol of the
// corresponding entry of n. tol must be non-negative.
func (m Mat3[S]) ApproxEqual(n Mat3[S], tol S) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// IsSpecialOrthogonal reports whether m is a member of SO(3) within tol:
// mᵀ·m within tol of the identity and det(m) within tol of +1.
//
// This is the opt-in validity check for rotation raw data; no rotation
// operation calls it implicitly.
func (m Mat3[S]) IsSpecialOrthogonal(tol S) bool {
	if !m.Transpose().Mul(m).ApproxEqual(Identity3[S](), tol) {
		return false
	}

	return Abs(m.Det()-1) <= tol
}

// IsSkewSymmetric reports whether m + mᵀ is the zero matrix within tol.
func (m Mat3[S]) IsSkewSymmetric(tol S) bool {
	return m.Add(m.Transpose()).ApproxEqual(Mat3[S]{}, tol)
}
