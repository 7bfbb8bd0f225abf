package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray, tMax float64) (ShapeHit, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return ShapeHit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= minHitT || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= minHitT || root >= tMax {
			return ShapeHit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	return ShapeHit{T: root, P: point, N: normal, UV: sphereUV(normal)}, true
}

// sphereUV maps a unit normal to (phi, theta) texture coordinates in [0,1]
func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.Bounds3 {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewBounds3(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
