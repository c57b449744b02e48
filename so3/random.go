// Package so3: uniform sampling.
// One sampler serves every representation: a uniform unit quaternion pushes
// forward to the Haar (rotation-invariant) measure on SO(3), and each
// representation converts from there. Randomness is always caller-supplied
// (explicit *rand.Rand, same discipline as seeded builders elsewhere in the
// lvl* libraries); a nil source is a programmer error and panics.

package so3

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlrot/linalg"
)

// randomQuaternion samples a uniformly distributed unit quaternion using
// Shoemake's subgroup algorithm: three independent uniforms map to a point
// uniform on the 3-sphere. Draws in float64 and narrows to S at the end, so
// float32 instantiations lose nothing during the trigonometry.
// Consumes exactly three rng values.
func randomQuaternion[S linalg.Scalar](rng *rand.Rand) Quaternion[S] {
	if rng == nil {
		panic("so3: Random requires a non-nil *rand.Rand")
	}

	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	r1, r2 := math.Sqrt(1-u1), math.Sqrt(u1)
	s1, c1 := math.Sincos(2 * math.Pi * u2)
	s2, c2 := math.Sincos(2 * math.Pi * u3)

	return Quaternion[S]{
		W: S(r2 * c2),
		X: S(r1 * s1),
		Y: S(r1 * c1),
		Z: S(r2 * s2),
	}
}
