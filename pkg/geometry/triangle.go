package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3    // Cached normal vector
	bounds     core.Bounds3 // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices; the normal follows the winding V0, V1, V2
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bounds: core.NewBounds3FromPoints(v0, v1, v2),
	}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray, tMax float64) (ShapeHit, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return ShapeHit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return ShapeHit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return ShapeHit{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= minHitT || tHit >= tMax {
		return ShapeHit{}, false
	}

	return ShapeHit{T: tHit, P: ray.At(tHit), N: t.normal, UV: core.NewVec2(u, v)}, true
}

// Bounds returns the axis-aligned bounding box for this triangle
func (t *Triangle) Bounds() core.Bounds3 {
	return t.bounds
}

// Normal returns the triangle's normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
