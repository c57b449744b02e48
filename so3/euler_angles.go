// Package so3: Euler-angle representation.
// Convention: intrinsic Z-Y′-X″ (yaw, then pitch, then roll), i.e.
// R = Rz(Yaw)·Ry(Pitch)·Rx(Roll) — the aerospace yaw-pitch-roll sequence.
// Pitch is reported in [−π/2, π/2]; at the gimbal lock |pitch| = π/2 only
// the sum/difference of yaw and roll is observable and FromCanonical
// resolves the ambiguity by fixing roll to 0.

package so3

import (
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// EulerAngles stores a rotation as yaw-pitch-roll angles in radians.
// The zero value is the identity rotation. Angles are not wrapped or
// validated; every triple encodes some rotation.
type EulerAngles[S linalg.Scalar] struct {
	Roll, Pitch, Yaw S
}

// ToCanonical expands Rz(Yaw)·Ry(Pitch)·Rx(Roll) in closed form.
func (e EulerAngles[S]) ToCanonical() linalg.Mat3[S] {
	sr, cr := linalg.Sin(e.Roll), linalg.Cos(e.Roll)
	sp, cp := linalg.Sin(e.Pitch), linalg.Cos(e.Pitch)
	sy, cy := linalg.Sin(e.Yaw), linalg.Cos(e.Yaw)

	return linalg.Mat3[S]{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr},
		{-sp, cp * sr, cp * cr},
	}
}

// FromCanonical extracts yaw-pitch-roll from a rotation matrix.
// Away from gimbal lock the three angles come from independent atan2 calls;
// inside the lock window roll is set to 0 and yaw absorbs the free sum.
func (EulerAngles[S]) FromCanonical(m linalg.Mat3[S]) EulerAngles[S] {
	sp := linalg.Clamp(-m[2][0], -1, 1)
	pitch := linalg.Asin(sp)

	if linalg.Abs(sp) >= 1-smallAngle[S]() {
		// cos(pitch) ≈ 0: rows carrying roll and yaw separately vanish.
		return EulerAngles[S]{
			Roll:  0,
			Pitch: pitch,
			Yaw:   linalg.Atan2(-m[0][1], m[1][1]),
		}
	}

	return EulerAngles[S]{
		Roll:  linalg.Atan2(m[2][1], m[2][2]),
		Pitch: pitch,
		Yaw:   linalg.Atan2(m[1][0], m[0][0]),
	}
}

// Identity returns all-zero angles.
func (EulerAngles[S]) Identity() EulerAngles[S] {
	return EulerAngles[S]{}
}

// Random returns a Haar-uniform rotation drawn from rng.
// Sampling happens in quaternion space; sampling the three angles
// independently would NOT be uniform on SO(3).
func (EulerAngles[S]) Random(rng *rand.Rand) EulerAngles[S] {
	return EulerAngles[S]{}.FromCanonical(randomQuaternion[S](rng).ToCanonical())
}

// Compose multiplies through the canonical form: Euler triples have no
// usable closed-form product.
func (e EulerAngles[S]) Compose(other EulerAngles[S]) EulerAngles[S] {
	return EulerAngles[S]{}.FromCanonical(e.ToCanonical().Mul(other.ToCanonical()))
}

// Inverse transposes the canonical form and re-extracts the angles.
// (The inverse triple is not the negated triple: the sequence reverses.)
func (e EulerAngles[S]) Inverse() EulerAngles[S] {
	return EulerAngles[S]{}.FromCanonical(e.ToCanonical().Transpose())
}

// IsCanonical reports false: the canonical representation is RotationMatrix.
func (EulerAngles[S]) IsCanonical() bool {
	return false
}

// quaternion returns the rotation's unit quaternion in closed half-angle
// form, the direct path used when converting to Quaternion.
func (e EulerAngles[S]) quaternion() Quaternion[S] {
	sr, cr := linalg.Sin(e.Roll/2), linalg.Cos(e.Roll/2)
	sp, cp := linalg.Sin(e.Pitch/2), linalg.Cos(e.Pitch/2)
	sy, cy := linalg.Sin(e.Yaw/2), linalg.Cos(e.Yaw/2)

	return Quaternion[S]{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}
