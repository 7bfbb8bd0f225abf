package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Normal vector (computed from U × V)
	D      float64   // Plane equation constant: ax + by + cz = d
	W      core.Vec3 // Cached cross product for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Intersect tests if a ray intersects with the quad
func (q *Quad) Intersect(ray core.Ray, tMax float64) (ShapeHit, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the quad
	if math.Abs(denominator) < 1e-8 {
		return ShapeHit{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= minHitT || t >= tMax {
		return ShapeHit{}, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Barycentric coordinates within the quad
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return ShapeHit{}, false
	}

	return ShapeHit{T: t, P: hitPoint, N: q.Normal, UV: core.NewVec2(alpha, beta)}, true
}

// Bounds returns the bounding box of the four corners
func (q *Quad) Bounds() core.Bounds3 {
	return core.NewBounds3FromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// NewBox returns the six outward-facing quads of an axis-aligned box
func NewBox(lo, hi core.Vec3) []*Quad {
	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return []*Quad{
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy),          // front (+z)
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy), // back (-z)
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy), // right (+x)
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy),          // left (-x)
		NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate()), // top (+y)
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz),          // bottom (-y)
	}
}
