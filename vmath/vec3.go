package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the float64 3D vector used for all motion and collision math
// Value type: every operation returns a new vector, callers never share backing storage
type Vec3 = mgl64.Vec3

// V3 builds a vector from components
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// ClampLength rescales v to length max when it is longer, preserving direction
// Zero and shorter vectors are returned unchanged
func ClampLength(v Vec3, max float64) Vec3 {
	if max <= 0 {
		return Vec3{}
	}
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// IsFinite reports whether every component is neither NaN nor infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Sanitize replaces non-finite components with zero
func Sanitize(v Vec3) Vec3 {
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			v[i] = 0
		}
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise
func Sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Clamp bounds f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
