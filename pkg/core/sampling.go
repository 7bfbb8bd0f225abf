package core

import (
	"math"
)

const (
	// OneMinusEpsilon is the largest float64 below one
	OneMinusEpsilon = 0x1.fffffffffffffp-1

	// UniformSpherePDF is the density of SampleUniformSphere over solid angle
	UniformSpherePDF = 1 / (4 * math.Pi)
)

// SampleUniformSphere maps a 2D sample to a direction uniformly distributed over the unit sphere
func SampleUniformSphere(u Vec2) Vec3 {
	z := 1.0 - 2.0*u.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleCosineHemisphere generates a cosine-weighted direction in the hemisphere around normal
func SampleCosineHemisphere(normal Vec3, u Vec2) Vec3 {
	d := SampleUniformDiskConcentric(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	tangent, bitangent := CoordinateSystem(normal)
	return tangent.Multiply(d.X).Add(bitangent.Multiply(d.Y)).Add(normal.Multiply(z))
}

// CosineHemispherePDF returns the density of SampleCosineHemisphere for a direction at cosTheta
func CosineHemispherePDF(cosTheta float64) float64 {
	return max(0, cosTheta) / math.Pi
}

// SampleUniformDiskConcentric maps a square sample to the unit disk using concentric mapping
func SampleUniformDiskConcentric(u Vec2) Vec2 {
	// Map to [-1,1]² and handle the degenerate center
	uOffset := NewVec2(2*u.X-1, 2*u.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return Vec2{}
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}
	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleTent samples the tent function of the given radius centered at zero
func SampleTent(u, radius float64) float64 {
	if SampleDiscrete([]float64{0.5, 0.5}, u, &u) == 0 {
		return -radius + radius*SampleLinear(u, 0, 1)
	}
	return radius * SampleLinear(u, 1, 0)
}

// SampleLinear draws x in [0,1] proportionally to the line through (0,a) and (1,b)
func SampleLinear(u, a, b float64) float64 {
	if u == 0 && a == 0 {
		return 0
	}
	x := u * (a + b) / (a + math.Sqrt(Lerp(u, a*a, b*b)))
	return math.Min(x, OneMinusEpsilon)
}

// Lerp linearly interpolates between a and b
func Lerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}

// NextFloatDown returns the largest float64 strictly below v
func NextFloatDown(v float64) float64 {
	return math.Nextafter(v, math.Inf(-1))
}

// SafeSqrt returns the square root of max(0, v)
func SafeSqrt(v float64) float64 {
	return math.Sqrt(math.Max(0, v))
}
