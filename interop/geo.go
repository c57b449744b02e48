// Package interop: golang/geo adapters.

package interop

import (
	geo "github.com/golang/geo/r3"

	"github.com/katalvlaran/lvlrot/linalg"
)

// GeoVector converts a linalg vector to golang/geo's r3.Vector.
func GeoVector(v linalg.Vec3[float64]) geo.Vector {
	return geo.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// FromGeoVector converts golang/geo's r3.Vector to a linalg vector.
func FromGeoVector(v geo.Vector) linalg.Vec3[float64] {
	return linalg.Vec3[float64]{v.X, v.Y, v.Z}
}
