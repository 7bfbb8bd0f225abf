package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// minHitT rejects hits at the ray origin; spawned rays are already offset from their surface
const minHitT = 1e-9

// ShapeHit describes where a ray meets a shape
type ShapeHit struct {
	T  float64   // Parameter t along the ray
	P  core.Vec3 // Point of intersection
	N  core.Vec3 // Outward unit normal at P
	UV core.Vec2 // Surface parameterization at P
}

// Shape is pure geometry that can be hit by rays
type Shape interface {
	// Intersect returns the closest hit with t in (0, tMax)
	Intersect(ray core.Ray, tMax float64) (ShapeHit, bool)
	Bounds() core.Bounds3
}
