package so3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrot/linalg"
	"github.com/katalvlaran/lvlrot/so3"
)

func TestEulerAngles_ConventionIsIntrinsicZYX(t *testing.T) {
	// Yaw alone must equal a pure Z rotation, pitch a pure Y rotation,
	// roll a pure X rotation.
	yawOnly := so3.New[float64](euld{Yaw: 0.4})
	require.True(t, so3.ApproxEqual(yawOnly,
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{0, 0, 1}, Angle: 0.4}), 1e-12))

	pitchOnly := so3.New[float64](euld{Pitch: -0.7})
	require.True(t, so3.ApproxEqual(pitchOnly,
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{0, 1, 0}, Angle: -0.7}), 1e-12))

	rollOnly := so3.New[float64](euld{Roll: 1.1})
	require.True(t, so3.ApproxEqual(rollOnly,
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{1, 0, 0}, Angle: 1.1}), 1e-12))

	// Composite order: R = Rz(yaw)·Ry(pitch)·Rx(roll).
	e := euld{Roll: 0.3, Pitch: -0.2, Yaw: 0.9}
	composed := so3.Compose(so3.Compose(
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{0, 0, 1}, Angle: 0.9}),
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{0, 1, 0}, Angle: -0.2})),
		so3.New[float64](aaxd{Axis: linalg.Vec3[float64]{1, 0, 0}, Angle: 0.3}))
	require.True(t, so3.ApproxEqual(so3.New[float64](e), composed, 1e-12))
}

func TestEulerAngles_RoundTripAwayFromLock(t *testing.T) {
	// Angles inside (−π/2, π/2) for pitch round-trip to themselves.
	cases := []euld{
		{Roll: 0.1, Pitch: 0.2, Yaw: 0.3},
		{Roll: -1.2, Pitch: 1.1, Yaw: 2.9},
		{Roll: 3.0, Pitch: -1.4, Yaw: -3.0},
	}

	for _, want := range cases {
		got := euld{}.FromCanonical(want.ToCanonical())
		require.InDelta(t, want.Roll, got.Roll, 1e-12)
		require.InDelta(t, want.Pitch, got.Pitch, 1e-12)
		require.InDelta(t, want.Yaw, got.Yaw, 1e-12)
	}
}

func TestEulerAngles_GimbalLock(t *testing.T) {
	// At pitch = ±π/2 only yaw∓roll is observable; the extractor fixes
	// roll = 0 and must still reproduce the same rotation.
	for _, e := range []euld{
		{Roll: 0.25, Pitch: math.Pi / 2, Yaw: 1.0},
		{Roll: -0.5, Pitch: -math.Pi / 2, Yaw: 0.3},
	} {
		m := e.ToCanonical()
		got := euld{}.FromCanonical(m)

		require.Zero(t, got.Roll)
		require.InDelta(t, e.Pitch, got.Pitch, 1e-6)
		require.True(t, m.ApproxEqual(got.ToCanonical(), 1e-9))
	}
}

func TestEulerAngles_InverseReversesSequence(t *testing.T) {
	e := so3.New[float64](euld{Roll: 0.3, Pitch: -0.4, Yaw: 0.5})

	// The inverse triple is NOT the negated triple; verify group-wise.
	require.True(t, e.Mul(e.Inverse()).IsIdentity())
	require.False(t, e.Inverse().Equal(so3.New[float64](euld{Roll: -0.3, Pitch: 0.4, Yaw: -0.5})))
}

func TestEulerAngles_DirectQuaternionPath(t *testing.T) {
	// euler → quaternion has a closed-form direct converter; it must agree
	// with the canonical pivot and preserve the rotation.
	e := so3.New[float64](euld{Roll: 0.7, Pitch: 0.2, Yaw: -1.3})
	q := so3.Convert[quatd](e)

	require.True(t, so3.ApproxEqual(e, q, 1e-12))
	require.InDelta(t, 1.0, q.RepData().Norm(), 1e-12)
}
