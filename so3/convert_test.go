package so3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrot/linalg"
	"github.com/katalvlaran/lvlrot/so3"
)

func TestConvert_IdentityConversionReturnsRawDataUnchanged(t *testing.T) {
	rng := newRNG()

	// Same source and target representation: raw data must be bit-identical,
	// not merely approximately equal, so repeated conversion is idempotent.
	q := so3.Random[float64, quatd](rng)
	require.Equal(t, q.RepData(), so3.Convert[quatd](q).RepData())

	e := so3.Random[float64, euld](rng)
	require.Equal(t, e.RepData(), so3.Convert[euld](e).RepData())
}

func TestConvert_AllPairsPreserveTheRotation(t *testing.T) {
	rng := newRNG()

	for i := 0; i < 10; i++ {
		src := so3.Random[float64, matd](rng)

		// Fan out into every representation (direct or pivoted paths alike)
		// and verify each one still encodes the same rotation.
		asQuat := so3.Convert[quatd](src)
		asRvec := so3.Convert[rvecd](src)
		asAxis := so3.Convert[aaxd](src)
		asEuler := so3.Convert[euld](src)

		require.True(t, so3.ApproxEqual(src, asQuat, 1e-9))
		require.True(t, so3.ApproxEqual(src, asRvec, 1e-9))
		require.True(t, so3.ApproxEqual(src, asAxis, 1e-9))
		require.True(t, so3.ApproxEqual(src, asEuler, 1e-9))

		// Second hop between non-canonical representations (direct paths).
		require.True(t, so3.ApproxEqual(asQuat, so3.Convert[rvecd](asQuat), 1e-9))
		require.True(t, so3.ApproxEqual(asRvec, so3.Convert[aaxd](asRvec), 1e-9))
		require.True(t, so3.ApproxEqual(asEuler, so3.Convert[quatd](asEuler), 1e-9))
	}
}

func TestConvert_DirectPathAgreesWithCanonicalPivot(t *testing.T) {
	rng := newRNG()

	for i := 0; i < 10; i++ {
		q := so3.Random[float64, quatd](rng)

		// Direct path: quaternion → rotation vector.
		direct := so3.Convert[rvecd](q)

		// Forced pivot: quaternion → matrix → rotation vector.
		pivoted := so3.Convert[rvecd](q.Canonical())

		require.True(t, direct.RepData().V.ApproxEqual(pivoted.RepData().V, 1e-9))
	}
}

func TestCrossRepresentationEquality(t *testing.T) {
	// A quarter turn about Z built independently in two representations.
	half := math.Pi / 4
	q := so3.New[float64](quatd{W: math.Cos(half), Z: math.Sin(half)})
	aa := zRotation(math.Pi / 2)

	// Tolerant comparison across representations.
	require.True(t, so3.ApproxEqual(q, aa, 1e-12))

	// Exact cross-representation equality holds for identities, whose
	// canonical matrices are exact in every representation.
	require.True(t, so3.Equal(
		so3.Identity[float64, quatd](),
		so3.Identity[float64, euld](),
	))
}

func TestMatrixRoundTrip(t *testing.T) {
	rng := newRNG()

	for i := 0; i < 25; i++ {
		want := so3.Random[float64, matd](rng).ToRotationMatrix()

		// FromRotationMatrix then ToRotationMatrix, through every
		// non-canonical representation, within 1e-6.
		var q so3.SO3[float64, quatd]
		q.FromRotationMatrix(want)
		require.True(t, want.ApproxEqual(q.ToRotationMatrix(), 1e-6))

		var rv so3.SO3[float64, rvecd]
		rv.FromRotationMatrix(want)
		require.True(t, want.ApproxEqual(rv.ToRotationMatrix(), 1e-6))

		var aa so3.SO3[float64, aaxd]
		aa.FromRotationMatrix(want)
		require.True(t, want.ApproxEqual(aa.ToRotationMatrix(), 1e-6))

		var eu so3.SO3[float64, euld]
		eu.FromRotationMatrix(want)
		require.True(t, want.ApproxEqual(eu.ToRotationMatrix(), 1e-6))
	}
}

func TestCanonical_IdempotentAndConstant(t *testing.T) {
	rng := newRNG()

	// 1) IsCanonical is a constant fact of the representation type.
	require.True(t, so3.Identity[float64, matd]().IsCanonical())
	require.False(t, so3.Identity[float64, quatd]().IsCanonical())
	require.False(t, so3.Identity[float64, rvecd]().IsCanonical())
	require.False(t, so3.Identity[float64, aaxd]().IsCanonical())
	require.False(t, so3.Identity[float64, euld]().IsCanonical())

	// 2) canonical().canonical() == canonical(): the second call is the
	//    identity conversion and must not change the raw data.
	q := so3.Random[float64, quatd](rng)
	once := q.Canonical()
	twice := once.Canonical()
	require.Equal(t, once.RepData(), twice.RepData())

	// 3) An already-canonical element is returned as-is.
	m := so3.Random[float64, matd](rng)
	require.Equal(t, m.RepData(), m.Canonical().RepData())
}

func TestCoordinates(t *testing.T) {
	// Coordinates returns the converted raw data directly.
	r := zRotation(math.Pi / 2)
	rv := so3.Coordinates[rvecd](r)

	require.True(t, rv.V.ApproxEqual(linalg.Vec3[float64]{0, 0, math.Pi / 2}, 1e-12))
}

func TestSetRepData_TrustedVerbatim(t *testing.T) {
	// SetRepData stores raw data without validation; the non-unit
	// quaternion round-trips verbatim through the accessors.
	var e so3.SO3[float64, quatd]
	raw := quatd{W: 2, X: 0, Y: 0, Z: 0}
	e.SetRepData(raw)
	require.Equal(t, raw, e.RepData())
}
