// Package linalg: 3-component vector primitive.
// Vec3 is a plain array; all methods are value-in/value-out, allocate
// nothing, and run in O(1) with fixed loop bounds.

package linalg

// Vec3 is a 3-component column vector with scalar type S.
// The zero value is the zero vector.
type Vec3[S Scalar] [3]S

// Add returns v + u.
func (v Vec3[S]) Add(u Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v − u.
func (v Vec3[S]) Sub(u Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns t·v.
func (v Vec3[S]) Scale(t S) Vec3[S] {
	return Vec3[S]{t * v[0], t * v[1], t * v[2]}
}

// Dot returns the scalar product v·u.
func (v Vec3[S]) Dot(u Vec3[S]) S {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the vector product v × u.
func (v Vec3[S]) Cross(u Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm returns the Euclidean length |v|.
func (v Vec3[S]) Norm() S {
	return Sqrt(v.Norm2())
}

// Norm2 returns the squared Euclidean length v·v.
func (v Vec3[S]) Norm2() S {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged: this package does not decide what a
// degenerate direction means, callers that care must check Norm first.
func (v Vec3[S]) Normalized() Vec3[S] {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// ApproxEqual reports whether every component of v is within tol of the
// corresponding component of u. tol must be non-negative.
func (v Vec3[S]) ApproxEqual(u Vec3[S], tol S) bool {
	for i := 0; i < 3; i++ {
		if Abs(v[i]-u[i]) > tol {
			return false
		}
	}

	return true
}

// Outer returns the outer product v·uᵀ as a 3×3 matrix.
func Outer[S Scalar](v, u Vec3[S]) Mat3[S] {
	var m Mat3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = v[i] * u[j]
		}
	}

	return m
}
